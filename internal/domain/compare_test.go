package domain

import (
	"strings"
	"testing"
)

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	n := 0
	base := []Option{
		WithLogger(t.Logf),
		WithNameSource(func(int) int { n++; return n }),
	}
	return NewEngine(append(base, opts...)...)
}

func TestDiffNewSubtree(t *testing.T) {
	// A subtree absent from the previous tree is flagged at its topmost new
	// node; descendants are subsumed.
	previous := `<config><network/></config>`
	latest := `<config><network><interface><entry name="eth1"/></interface></network></config>`

	snippets, err := testEngine(t).Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1: %+v", len(snippets), snippets)
	}

	s := snippets[0]
	if !strings.HasSuffix(s.FullPath, "/network/interface") {
		t.Errorf("FullPath = %q, want suffix /network/interface", s.FullPath)
	}
	if s.XPath != "/config/network" {
		t.Errorf("XPath = %q, want /config/network", s.XPath)
	}
	if s.Element != `<interface><entry name="eth1"/></interface>` {
		t.Errorf("Element = %q", s.Element)
	}
	if !strings.Contains(s.Element, `<entry name="eth1"/>`) {
		t.Errorf("Element missing new entry: %q", s.Element)
	}
	if !strings.HasPrefix(s.Name, "interface-") {
		t.Errorf("Name = %q, want interface- prefix", s.Name)
	}
}

func TestDiffUnchangedListShortCircuits(t *testing.T) {
	// Reordered but otherwise identical list entries must not be flagged.
	previous := `<config><shared><address>
		<entry name="a"><ip-netmask>10.0.0.1</ip-netmask></entry>
		<entry name="b"><ip-netmask>10.0.0.2</ip-netmask></entry>
		<entry name="c"><ip-netmask>10.0.0.3</ip-netmask></entry>
	</address></shared></config>`
	latest := `<config><shared><address>
		<entry name="c"><ip-netmask>10.0.0.3</ip-netmask></entry>
		<entry name="a"><ip-netmask>10.0.0.1</ip-netmask></entry>
		<entry name="b"><ip-netmask>10.0.0.2</ip-netmask></entry>
	</address></shared></config>`

	snippets, err := testEngine(t).Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("got %d snippets, want 0: %+v", len(snippets), snippets)
	}
}

func TestDiffTextChange(t *testing.T) {
	previous := `<config><devices><entry name="x"><port>0000</port></entry></devices></config>`
	latest := `<config><devices><entry name="x"><port>6666</port></entry></devices></config>`

	snippets, err := testEngine(t).Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1: %+v", len(snippets), snippets)
	}

	s := snippets[0]
	if s.FullPath != `./devices/entry[@name="x"]/port` {
		t.Errorf("FullPath = %q", s.FullPath)
	}
	if s.XPath != `/config/devices/entry[@name="x"]` {
		t.Errorf("XPath = %q", s.XPath)
	}
	if s.Element != "<port>6666</port>" {
		t.Errorf("Element = %q", s.Element)
	}
}

const richConfig = `<config>
	<shared>
		<tag><entry name="prod"><color>color1</color></entry><entry name="dev"><color>color2</color></entry></tag>
		<address>
			<entry name="web"><ip-netmask>10.0.0.1</ip-netmask></entry>
			<entry name="db"><ip-netmask>10.0.0.2</ip-netmask></entry>
		</address>
	</shared>
	<devices>
		<entry name="localhost.localdomain">
			<vsys><entry name="vsys1">
				<rulebase><security><rules>
					<entry name="allow-web" uuid="1111-2222">
						<from><member>trust</member></from>
						<to><member>untrust</member></to>
						<action>allow</action>
					</entry>
				</rules></security></rulebase>
			</entry></vsys>
		</entry>
	</devices>
</config>`

func TestDiffIdempotence(t *testing.T) {
	snippets, err := testEngine(t).Diff(richConfig, richConfig)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("diff(X, X) returned %d snippets: %+v", len(snippets), snippets)
	}
}

func TestDiffContainmentAndSubsumption(t *testing.T) {
	latest := strings.Replace(richConfig,
		`<entry name="db"><ip-netmask>10.0.0.2</ip-netmask></entry>`,
		`<entry name="db"><ip-netmask>10.0.0.9</ip-netmask></entry>`+
			`<entry name="cache"><ip-netmask>10.0.0.3</ip-netmask></entry>`, 1)
	latest = strings.Replace(latest, "<action>allow</action>", "<action>deny</action>", 1)

	e := testEngine(t)
	snippets, err := e.Diff(richConfig, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) == 0 {
		t.Fatal("expected a non-empty change set")
	}

	previous := mustParse(t, richConfig)
	for _, s := range snippets {
		// Containment: each path is absent from the previous tree or
		// present with different text, never present and identical.
		found := Resolve(previous, s.FullPath)
		if len(found) == 0 {
			continue
		}
		latestNodes := Resolve(mustParse(t, latest), s.FullPath)
		if len(latestNodes) != 1 {
			t.Fatalf("path %q resolved to %d nodes in latest", s.FullPath, len(latestNodes))
		}
		if found[0].Text == latestNodes[0].Text {
			t.Errorf("path %q present in previous with identical text", s.FullPath)
		}
	}

	// Subsumption: no path is a strict descendant of another.
	for _, a := range snippets {
		for _, b := range snippets {
			if a.FullPath != b.FullPath && strings.HasPrefix(b.FullPath, a.FullPath+"/") {
				t.Errorf("path %q subsumes emitted descendant %q", a.FullPath, b.FullPath)
			}
		}
	}
}

func TestDiffAttributeOnlyChangeNotFlagged(t *testing.T) {
	// A node whose attributes changed but whose path predicate and content
	// still match is not flagged. Attributes are treated as identifying,
	// not payload.
	previous := `<config><devices><entry name="x" loc="a"><port>1</port></entry></devices></config>`
	latest := `<config><devices><entry name="x" loc="a" extra="new"><port>1</port></entry></devices></config>`

	snippets, err := testEngine(t).Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("attribute-only change produced %d snippets: %+v", len(snippets), snippets)
	}
}

func TestDiffListMemberTextPredicate(t *testing.T) {
	// List members without attributes but with text get text predicates;
	// empty members get positional indexes.
	previous := `<config><system><dns>
		<server>1.1.1.1</server>
		<server>8.8.8.8</server>
	</dns></system></config>`
	latest := `<config><system><dns>
		<server>1.1.1.1</server>
		<server>8.8.8.8</server>
		<server>9.9.9.9</server>
	</dns></system></config>`

	snippets, err := testEngine(t).Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1: %+v", len(snippets), snippets)
	}
	if snippets[0].FullPath != `./system/dns/server[text()="9.9.9.9"]` {
		t.Errorf("FullPath = %q", snippets[0].FullPath)
	}
}

func TestDiffParseError(t *testing.T) {
	_, err := testEngine(t).Diff("<config>", "<config/>")
	if err == nil {
		t.Fatal("expected ParseError")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("got %T, want *ParseError", err)
	}
}

func TestDiffAmbiguousPathFails(t *testing.T) {
	// Two same-tag siblings outside a homogeneous run produce a bare-tag
	// path that resolves to both; the assembler must fail loudly instead of
	// emitting an arbitrary one.
	previous := `<config><network/></config>`
	latest := `<config><network><a><x>1</x></a><a><x>2</x></a><b/></network></config>`

	_, err := testEngine(t).Diff(previous, latest)
	if err == nil {
		t.Fatal("expected PathResolutionError")
	}
	if _, ok := err.(*PathResolutionError); !ok {
		t.Errorf("got %T (%v), want *PathResolutionError", err, err)
	}
}

func TestDiffVolatileAttributeStripped(t *testing.T) {
	previous := `<config><rulebase><security><rules/></security></rulebase></config>`
	latest := `<config><rulebase><security><rules>
		<entry name="r1" uuid="aaaa-bbbb"><action>allow</action></entry>
	</rules></security></rulebase></config>`

	snippets, err := testEngine(t).Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1", len(snippets))
	}
	if strings.Contains(snippets[0].Element, "uuid") {
		t.Errorf("volatile attribute survived: %q", snippets[0].Element)
	}
	if !strings.Contains(snippets[0].Element, `<entry name="r1">`) {
		t.Errorf("Element = %q", snippets[0].Element)
	}
}

func TestDiffDoesNotMutateInputs(t *testing.T) {
	previous := `<config><rulebase><security><rules/></security></rulebase></config>`
	latest := `<config><rulebase><security><rules>
		<entry name="r1" uuid="aaaa-bbbb"><action>allow</action></entry>
	</rules></security></rulebase></config>`

	prevTree := mustParse(t, previous)
	latestTree := mustParse(t, latest)
	before := latestTree.XML()

	e := testEngine(t)
	if _, err := e.DiffTrees(prevTree, latestTree); err != nil {
		t.Fatalf("DiffTrees: %v", err)
	}
	if latestTree.XML() != before {
		t.Error("DiffTrees mutated the latest tree")
	}
}
