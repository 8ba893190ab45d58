package domain

import (
	"reflect"
	"testing"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		wantContainer string
		wantLast      string
	}{
		{
			name:          "plain path",
			path:          "./network/interface",
			wantContainer: "./network",
			wantLast:      "interface",
		},
		{
			name:          "attribute predicate",
			path:          `./mgt-config/users/entry[@name="admin"]`,
			wantContainer: "./mgt-config/users",
			wantLast:      `entry[@name="admin"]`,
		},
		{
			name:          "slash inside quoted predicate",
			path:          `./address/entry[@name="net/24"]/ip-netmask`,
			wantContainer: `./address/entry[@name="net/24"]`,
			wantLast:      "ip-netmask",
		},
		{
			name:          "single segment",
			path:          "config",
			wantContainer: "",
			wantLast:      "config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, last := SplitPath(tt.path)
			if container != tt.wantContainer || last != tt.wantLast {
				t.Errorf("SplitPath(%q) = (%q, %q), want (%q, %q)",
					tt.path, container, last, tt.wantContainer, tt.wantLast)
			}
		})
	}
}

func TestPathRewriting(t *testing.T) {
	if got := ToSetPath("./network/interface"); got != "/config/network/interface" {
		t.Errorf("ToSetPath = %q", got)
	}
	if got := ToSetPath("/config/network"); got != "/config/network" {
		t.Errorf("ToSetPath on absolute path = %q", got)
	}
	if got := ToRelativePath("/config/network/interface"); got != "./network/interface" {
		t.Errorf("ToRelativePath = %q", got)
	}
}

func TestBareTag(t *testing.T) {
	tests := []struct {
		segment string
		want    string
	}{
		{`entry[@name="a"]`, "entry"},
		{"member[2]", "member"},
		{`server[text()="1.1.1.1"]`, "server"},
		{"interface", "interface"},
	}
	for _, tt := range tests {
		if got := BareTag(tt.segment); got != tt.want {
			t.Errorf("BareTag(%q) = %q, want %q", tt.segment, got, tt.want)
		}
	}
}

func TestAttributePredicate(t *testing.T) {
	n := &Node{Tag: "entry", Attrs: []Attr{
		{Key: "name", Value: "rule1"},
		{Key: "uuid", Value: "aaaa-bbbb"},
		{Key: "loc", Value: "vsys1"},
	}}
	want := `@name="rule1" @loc="vsys1"`
	if got := AttributePredicate(n); got != want {
		t.Errorf("AttributePredicate = %q, want %q", got, want)
	}

	onlyVolatile := &Node{Tag: "entry", Attrs: []Attr{{Key: "uuid", Value: "x"}}}
	if got := AttributePredicate(onlyVolatile); got != "" {
		t.Errorf("AttributePredicate with only volatile attr = %q, want empty", got)
	}
}

func TestResolve(t *testing.T) {
	doc := `<config>
		<shared>
			<address>
				<entry name="web" loc="shared"><ip-netmask>10.0.0.1</ip-netmask></entry>
				<entry name="db"><ip-netmask>10.0.0.2</ip-netmask></entry>
			</address>
			<dns>
				<server>1.1.1.1</server>
				<server>8.8.8.8</server>
			</dns>
		</shared>
	</config>`
	root, err := ParseString(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		matches int
	}{
		{"bare tags", "./shared/address", 1},
		{"attribute predicate", `./shared/address/entry[@name="web"]`, 1},
		{"space-joined predicates", `./shared/address/entry[@name="web" @loc="shared"]`, 1},
		{"chained predicates", `./shared/address/entry[@name="web"][@loc="shared"]`, 1},
		{"text predicate", `./shared/dns/server[text()="8.8.8.8"]`, 1},
		{"positional index", "./shared/dns/server[2]", 1},
		{"all same-tag siblings", "./shared/address/entry", 2},
		{"missing node", "./shared/service", 0},
		{"wrong attribute value", `./shared/address/entry[@name="mail"]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(root, tt.path)
			if len(got) != tt.matches {
				t.Errorf("Resolve(%q) returned %d nodes, want %d", tt.path, len(got), tt.matches)
			}
		})
	}

	// The index predicate must pick the right sibling, not just any.
	nodes := Resolve(root, "./shared/dns/server[2]")
	if len(nodes) != 1 || nodes[0].Text != "8.8.8.8" {
		t.Errorf("server[2] resolved to %+v", nodes)
	}
}

func TestResolveNormalizedPathIsUnique(t *testing.T) {
	// A normalized path must resolve to exactly one node in the tree it was
	// derived from.
	root, err := ParseString(`<config><a><b name="x"/><b name="y"/></a></config>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, b := range Resolve(root, "./a")[0].Children {
		path := "./a/" + segmentFor(b, false, 1)
		got := Resolve(root, path)
		if len(got) != 1 || got[0] != b {
			t.Errorf("path %q resolved to %d nodes", path, len(got))
		}
	}
}

func TestSplitSegmentsRoundTrip(t *testing.T) {
	path := `./a/entry[@name="x/y"]/b`
	want := []string{".", "a", `entry[@name="x/y"]`, "b"}
	if got := splitSegments(path); !reflect.DeepEqual(got, want) {
		t.Errorf("splitSegments = %v, want %v", got, want)
	}
}
