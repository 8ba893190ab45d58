package domain

import "testing"

func TestIsHomogeneousList(t *testing.T) {
	entry := func(name string) *Node {
		return &Node{Tag: "entry", Attrs: []Attr{{Key: "name", Value: name}}}
	}

	tests := []struct {
		name     string
		children []*Node
		want     bool
	}{
		{"empty", nil, false},
		{"single child", []*Node{entry("a")}, false},
		{"uniform tags", []*Node{entry("a"), entry("b"), entry("c")}, true},
		{"mixed tags", []*Node{entry("a"), {Tag: "member"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHomogeneousList(tt.children); got != tt.want {
				t.Errorf("isHomogeneousList = %v, want %v", got, tt.want)
			}
		})
	}
}

func mustParse(t *testing.T, doc string) *Node {
	t.Helper()
	n, err := ParseString(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func TestMatcherDiffCount(t *testing.T) {
	m := defaultMatcher()

	tests := []struct {
		name     string
		previous string
		latest   string
		want     int
	}{
		{
			name:     "identical lists",
			previous: `<address><entry name="a"><ip>1.1.1.1</ip></entry><entry name="b"><ip>2.2.2.2</ip></entry></address>`,
			latest:   `<address><entry name="a"><ip>1.1.1.1</ip></entry><entry name="b"><ip>2.2.2.2</ip></entry></address>`,
			want:     0,
		},
		{
			name:     "reordered entries are not a change",
			previous: `<address><entry name="a"><ip>1.1.1.1</ip></entry><entry name="b"><ip>2.2.2.2</ip></entry></address>`,
			latest:   `<address><entry name="b"><ip>2.2.2.2</ip></entry><entry name="a"><ip>1.1.1.1</ip></entry></address>`,
			want:     0,
		},
		{
			name:     "modified entry",
			previous: `<address><entry name="a"><ip>1.1.1.1</ip></entry><entry name="b"><ip>2.2.2.2</ip></entry></address>`,
			latest:   `<address><entry name="a"><ip>9.9.9.9</ip></entry><entry name="b"><ip>2.2.2.2</ip></entry></address>`,
			want:     1,
		},
		{
			name:     "added entry",
			previous: `<address><entry name="a"><ip>1.1.1.1</ip></entry></address>`,
			latest:   `<address><entry name="a"><ip>1.1.1.1</ip></entry><entry name="c"><ip>3.3.3.3</ip></entry></address>`,
			want:     1,
		},
		{
			name:     "removed entry",
			previous: `<address><entry name="a"><ip>1.1.1.1</ip></entry><entry name="b"><ip>2.2.2.2</ip></entry></address>`,
			latest:   `<address><entry name="a"><ip>1.1.1.1</ip></entry></address>`,
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := mustParse(t, tt.previous)
			latest := mustParse(t, tt.latest)
			if got := m.DiffCount(prev, latest); got != tt.want {
				t.Errorf("DiffCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatcherReorderWithoutFastMatch(t *testing.T) {
	m := Matcher{Ratio: 0.1, FastMatch: false}
	prev := mustParse(t, `<dns><server>1.1.1.1</server><server>8.8.8.8</server></dns>`)
	latest := mustParse(t, `<dns><server>8.8.8.8</server><server>1.1.1.1</server></dns>`)
	if got := m.DiffCount(prev, latest); got != 0 {
		t.Errorf("DiffCount without fast match = %d, want 0", got)
	}
}

func TestLeafRatio(t *testing.T) {
	a := mustParse(t, `<entry name="a"><ip>1.1.1.1</ip><desc>web</desc></entry>`)
	identical := mustParse(t, `<entry name="a"><ip>1.1.1.1</ip><desc>web</desc></entry>`)
	disjoint := mustParse(t, `<entry name="z"><ip>9.9.9.9</ip><desc>db</desc></entry>`)

	if r := leafRatio(a, identical); r != 1 {
		t.Errorf("identical ratio = %v, want 1", r)
	}
	if r := leafRatio(a, disjoint); r != 0 {
		t.Errorf("disjoint ratio = %v, want 0", r)
	}

	partial := mustParse(t, `<entry name="a"><ip>1.1.1.1</ip><desc>db</desc></entry>`)
	if r := leafRatio(a, partial); r <= 0 || r >= 1 {
		t.Errorf("partial ratio = %v, want strictly between 0 and 1", r)
	}
}
