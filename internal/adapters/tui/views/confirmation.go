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

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// DeleteModel asks for confirmation before deleting a snapshot
type DeleteModel struct {
	ViewState
	store  ports.SnapshotStore
	target domain.Snapshot
	Keys   ConfirmKeyMap
}

// NewDeleteModel creates a new delete confirmation model
func NewDeleteModel(store ports.SnapshotStore) *DeleteModel {
	return &DeleteModel{
		store: store,
		Keys:  DefaultConfirmKeys,
	}
}

// SetTarget sets the snapshot to delete
func (m *DeleteModel) SetTarget(snap domain.Snapshot) {
	m.target = snap
	m.ClearMessage()
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, m.Keys.Confirm):
			name := m.target.Name
			return m, func() tea.Msg {
				cmd := commands.NewDeleteSnapshotCommand(m.store, name)
				if err := cmd.Execute(context.Background()); err != nil {
					return errMsg{err}
				}
				return successMsg{fmt.Sprintf("Deleted %s", name)}
			}
		}
	}

	return m, nil
}

// View renders the confirmation prompt
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Snapshot"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Delete snapshot:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %d  %s  %s  %s\n\n",
		m.target.ID, m.target.Name, m.target.Device,
		m.target.TakenAt.Format("2006-01-02 15:04")))

	b.WriteString("This cannot be undone. ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	return styles.App.Render(b.String())
}
