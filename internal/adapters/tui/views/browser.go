package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"skillet/internal/adapters/tui/styles"
	"skillet/internal/application/commands"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

// BrowserKeyMap defines key bindings for the snapshot browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Mark   key.Binding
	Diff   key.Binding
	SetCLI key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Mark: key.NewBinding(
		key.WithKeys("m", " "),
		key.WithHelp("m/space", "mark as previous"),
	),
	Diff: key.NewBinding(
		key.WithKeys("d", "enter"),
		key.WithHelp("d/enter", "diff against marked"),
	),
	SetCLI: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "set-cli diff"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the snapshot list view
type BrowserModel struct {
	ViewState
	store  ports.SnapshotStore
	engine *domain.Engine

	snapshots []domain.Snapshot
	cursor    int
	marked    string // name of the snapshot marked as diff base
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store ports.SnapshotStore, engine *domain.Engine) *BrowserModel {
	return &BrowserModel{
		store:  store,
		engine: engine,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadSnapshots
}

func (m *BrowserModel) loadSnapshots() tea.Msg {
	snaps, err := m.store.List()
	if err != nil {
		return errMsg{err}
	}
	return snapshotsLoadedMsg{snaps}
}

type snapshotsLoadedMsg struct {
	snapshots []domain.Snapshot
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case snapshotsLoadedMsg:
		m.snapshots = msg.snapshots
		if m.cursor >= len(m.snapshots) {
			m.cursor = len(m.snapshots) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.snapshots)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Mark):
			if snap := m.selectedSnapshot(); snap != nil {
				if m.marked == snap.Name {
					m.marked = ""
				} else {
					m.marked = snap.Name
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Diff):
			return m, m.runDiff(false)

		case key.Matches(msg, BrowserKeys.SetCLI):
			return m, m.runDiff(true)

		case key.Matches(msg, BrowserKeys.Delete):
			if snap := m.selectedSnapshot(); snap != nil {
				target := *snap
				return m, func() tea.Msg {
					return SwitchToDeleteMsg{Snapshot: target}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) runDiff(setCLI bool) tea.Cmd {
	snap := m.selectedSnapshot()
	if snap == nil {
		return nil
	}
	if m.marked == "" {
		m.SetMessage("mark a snapshot as the diff base first (m)", true)
		return nil
	}
	if m.marked == snap.Name {
		m.SetMessage("marked and selected snapshot are the same", true)
		return nil
	}

	previous, latest := m.marked, snap.Name
	title := fmt.Sprintf("%s → %s", previous, latest)

	return func() tea.Msg {
		ctx := context.Background()
		if setCLI {
			cmds, err := commands.NewSetCLIDiffCommand(m.store, m.engine, previous, latest).Execute(ctx)
			if err != nil {
				return errMsg{err}
			}
			return SwitchToSnippetsMsg{Title: title, Commands: cmds}
		}
		snippets, err := commands.NewDiffCommand(m.store, m.engine, previous, latest).Execute(ctx)
		if err != nil {
			return errMsg{err}
		}
		return SwitchToSnippetsMsg{Title: title, Snippets: snippets}
	}
}

func (m *BrowserModel) selectedSnapshot() *domain.Snapshot {
	if m.cursor >= 0 && m.cursor < len(m.snapshots) {
		return &m.snapshots[m.cursor]
	}
	return nil
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Skillet"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Configuration Snapshot Differ"))
	b.WriteString("\n\n")

	if len(m.snapshots) == 0 {
		b.WriteString(styles.MutedText.Render("No snapshots. Fetch or import one with the CLI."))
		b.WriteString("\n")
	}

	for i, snap := range m.snapshots {
		b.WriteString(m.renderRow(snap, i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderRow(snap domain.Snapshot, selected bool) string {
	marker := "  "
	if snap.Name == m.marked {
		marker = styles.RowMarked.Render("◆ ")
	}

	text := fmt.Sprintf("%-4d %-28s %-14s %-10s %s",
		snap.ID, snap.Name, snap.Device, snap.Source,
		snap.TakenAt.Format("2006-01-02 15:04"))

	if selected {
		return marker + styles.RowSelected.Render(text)
	}

	source := styles.MutedText.Foreground(styles.SourceColor(snap.Source)).
		Render(fmt.Sprintf("%-10s", snap.Source))
	return marker + styles.RowName.Render(fmt.Sprintf("%-4d %-28s", snap.ID, snap.Name)) +
		styles.RowMeta.Render(fmt.Sprintf(" %-14s ", snap.Device)) +
		source +
		styles.RowMeta.Render(" "+snap.TakenAt.Format("2006-01-02 15:04"))
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"m", "mark base"},
		{"d", "diff"},
		{"s", "set-cli"},
		{"x", "delete"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload refetches the snapshot list
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadSnapshots
}

// Messages for view switching
type SwitchToSnippetsMsg struct {
	Title    string
	Snippets []domain.Snippet
	Commands []string
}

type SwitchToDeleteMsg struct {
	Snapshot domain.Snapshot
}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
