package domain

import (
	"strings"
	"testing"
)

func TestAssembleSkipsIgnoredPaths(t *testing.T) {
	// Changes to the built-in admin account must never be emitted.
	previous := `<config><mgt-config><users>
		<entry name="admin"><phash>old</phash></entry>
	</users></mgt-config></config>`
	latest := `<config><mgt-config><users>
		<entry name="admin"><phash>new</phash></entry>
	</users></mgt-config></config>`

	var logged []string
	e := NewEngine(
		WithLogger(func(format string, args ...any) {
			logged = append(logged, format)
		}),
		WithNameSource(func(int) int { return 1 }),
	)

	snippets, err := e.Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("ignored change emitted: %+v", snippets)
	}
	if len(logged) == 0 {
		t.Error("skipped entry was not logged")
	}
}

func TestAssembleIgnoreListIsSubstitutable(t *testing.T) {
	previous := `<config><mgt-config><users>
		<entry name="admin"><phash>old</phash></entry>
	</users></mgt-config></config>`
	latest := `<config><mgt-config><users>
		<entry name="admin"><phash>new</phash></entry>
	</users></mgt-config></config>`

	empty := DefaultPolicy()
	empty.IgnoredPaths = nil
	snippets, err := testEngine(t, WithPolicy(empty)).Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 1 {
		t.Errorf("got %d snippets with empty ignore list, want 1", len(snippets))
	}
}

func TestSnippetNames(t *testing.T) {
	previous := `<config><network/></config>`
	latest := `<config><network><interface><entry name="eth1"/></interface></network></config>`

	e := NewEngine(
		WithLogger(func(string, ...any) {}),
		WithNameSource(func(int) int { return 424242 }),
	)
	snippets, err := e.Diff(previous, latest)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets", len(snippets))
	}
	// Bracketed suffixes are stripped for naming; the disambiguator comes
	// from the injected source.
	if snippets[0].Name != "interface-424242" {
		t.Errorf("Name = %q", snippets[0].Name)
	}
}

func TestStripVolatile(t *testing.T) {
	n := mustParse(t, `<rules><entry name="r1" uuid="a"><nested uuid="b"><x>1</x></nested></entry></rules>`)
	stripVolatile(n)
	if strings.Contains(n.XML(), "uuid") {
		t.Errorf("uuid survived: %s", n.XML())
	}
	if _, ok := n.Children[0].Attr("name"); !ok {
		t.Error("non-volatile attribute removed")
	}

	if stripVolatile(nil) != nil {
		t.Error("stripVolatile(nil) must be a no-op")
	}
}
