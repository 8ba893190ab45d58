package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"skillet/internal/adapters/tui/styles"
	"skillet/internal/domain"
)

// SnippetsKeyMap defines key bindings for the diff result view
type SnippetsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Copy key.Binding
	Back key.Binding
	Quit key.Binding
}

var SnippetsKeys = SnippetsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SnippetsModel shows a diff result: either XML snippets or set-format
// CLI commands
type SnippetsModel struct {
	ViewState
	title    string
	snippets []domain.Snippet
	cmds     []string
	cursor   int
}

// NewSnippetsModel creates a new snippets view model
func NewSnippetsModel() *SnippetsModel {
	return &SnippetsModel{}
}

// SetResult loads a diff result into the view
func (m *SnippetsModel) SetResult(title string, snippets []domain.Snippet, cmds []string) {
	m.title = title
	m.snippets = snippets
	m.cmds = cmds
	m.cursor = 0
	m.ClearMessage()
}

// Init initializes the snippets view
func (m *SnippetsModel) Init() tea.Cmd {
	return nil
}

func (m *SnippetsModel) itemCount() int {
	if m.snippets != nil {
		return len(m.snippets)
	}
	return len(m.cmds)
}

// Update handles messages for the snippets view
func (m *SnippetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, SnippetsKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, SnippetsKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, SnippetsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SnippetsKeys.Down):
			if m.cursor < m.itemCount()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SnippetsKeys.Copy):
			return m, m.copySelected()
		}
	}

	return m, nil
}

func (m *SnippetsModel) copySelected() tea.Cmd {
	var text string
	switch {
	case m.snippets != nil && m.cursor < len(m.snippets):
		text = m.snippets[m.cursor].Element
	case m.cmds != nil:
		text = strings.Join(m.cmds, "\n")
	default:
		return nil
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
		return nil
	}
	m.SetMessage("Copied to clipboard", false)
	return nil
}

// View renders the diff result
func (m *SnippetsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Diff"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.title))
	b.WriteString("\n\n")

	switch {
	case m.itemCount() == 0:
		b.WriteString(styles.MutedText.Render("No differences."))
		b.WriteString("\n")

	case m.snippets != nil:
		for i, s := range m.snippets {
			cursor := "  "
			if i == m.cursor {
				cursor = styles.HelpKey.Render("> ")
			}
			b.WriteString(cursor)
			b.WriteString(styles.SnippetName.Render(s.Name))
			b.WriteString("  ")
			b.WriteString(styles.SnippetXPath.Render(s.XPath))
			b.WriteString("\n")
			if i == m.cursor {
				for _, line := range strings.Split(s.Element, "\n") {
					b.WriteString("    ")
					b.WriteString(styles.SnippetBody.Render(line))
					b.WriteString("\n")
				}
			}
		}

	default:
		for i, cmd := range m.cmds {
			cursor := "  "
			if i == m.cursor {
				cursor = styles.HelpKey.Render("> ")
			}
			b.WriteString(cursor)
			b.WriteString(styles.SnippetBody.Render(cmd))
			b.WriteString("\n")
		}
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

func (m *SnippetsModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"c", "copy"},
		{"esc", "back"},
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
