package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skillet/internal/application"
	"skillet/internal/domain"
)

// stubStore serves a fixed snapshot list
type stubStore struct {
	snapshots []domain.Snapshot
}

func (s *stubStore) Open(string) error { return nil }
func (s *stubStore) Close() error      { return nil }

func (s *stubStore) Save(snap *domain.Snapshot) (int64, error) {
	return snap.ID, nil
}

func (s *stubStore) Get(ref string) (*domain.Snapshot, error) {
	for i := range s.snapshots {
		if s.snapshots[i].Name == ref {
			return &s.snapshots[i], nil
		}
	}
	return nil, application.ErrNotFound
}

func (s *stubStore) List() ([]domain.Snapshot, error) {
	return s.snapshots, nil
}

func (s *stubStore) Delete(string) error { return nil }

func testBrowser(t *testing.T) *BrowserModel {
	t.Helper()
	store := &stubStore{
		snapshots: []domain.Snapshot{
			{
				ID: 2, Name: "after", Device: "fw01", Source: "candidate",
				TakenAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				Body:    `<config><network><interface><entry name="eth1"/></interface></network></config>`,
			},
			{
				ID: 1, Name: "before", Device: "fw01", Source: "running",
				TakenAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Body:    `<config><network/></config>`,
			},
		},
	}
	engine := domain.NewEngine(domain.WithLogger(func(string, ...any) {}))
	m := NewBrowserModel(store, engine)

	msg := m.Init()()
	m.Update(msg)
	return m
}

func keyPress(m *BrowserModel, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestBrowserLoadsSnapshots(t *testing.T) {
	m := testBrowser(t)
	if len(m.snapshots) != 2 {
		t.Fatalf("got %d snapshots", len(m.snapshots))
	}

	view := m.View()
	if !strings.Contains(view, "after") || !strings.Contains(view, "before") {
		t.Errorf("view missing snapshot names:\n%s", view)
	}
}

func TestBrowserNavigationClamps(t *testing.T) {
	m := testBrowser(t)

	keyPress(m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor moved above top: %d", m.cursor)
	}

	keyPress(m, "j")
	keyPress(m, "j")
	keyPress(m, "j")
	if m.cursor != 1 {
		t.Errorf("cursor moved past bottom: %d", m.cursor)
	}
}

func TestBrowserMarkToggles(t *testing.T) {
	m := testBrowser(t)

	keyPress(m, "m")
	if m.marked != "after" {
		t.Errorf("marked = %q", m.marked)
	}

	keyPress(m, "m")
	if m.marked != "" {
		t.Errorf("mark did not toggle off: %q", m.marked)
	}
}

func TestBrowserDiffRequiresMark(t *testing.T) {
	m := testBrowser(t)

	if cmd := keyPress(m, "d"); cmd != nil {
		t.Error("diff ran without a marked base")
	}
	if m.Message == "" || !m.MessageErr {
		t.Error("expected an error message")
	}
}

func TestBrowserDiffProducesSnippets(t *testing.T) {
	m := testBrowser(t)

	keyPress(m, "j") // select "before"
	keyPress(m, "m") // mark as base
	keyPress(m, "k") // select "after"

	cmd := keyPress(m, "d")
	if cmd == nil {
		t.Fatal("diff produced no command")
	}

	msg, ok := cmd().(SwitchToSnippetsMsg)
	if !ok {
		t.Fatalf("got %T, want SwitchToSnippetsMsg", cmd())
	}
	if msg.Title != "before → after" {
		t.Errorf("Title = %q", msg.Title)
	}
	if len(msg.Snippets) != 1 {
		t.Fatalf("got %d snippets", len(msg.Snippets))
	}
	if msg.Snippets[0].XPath != "/config/network" {
		t.Errorf("XPath = %q", msg.Snippets[0].XPath)
	}
}

func TestBrowserDiffSameSnapshot(t *testing.T) {
	m := testBrowser(t)

	keyPress(m, "m")
	if cmd := keyPress(m, "d"); cmd != nil {
		t.Error("diff ran against itself")
	}
	if !m.MessageErr {
		t.Error("expected an error message")
	}
}
