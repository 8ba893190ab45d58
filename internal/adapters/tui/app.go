package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"skillet/internal/adapters/tui/views"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSnippets
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store  ports.SnapshotStore
	engine *domain.Engine

	state    ViewState
	browser  *views.BrowserModel
	snippets *views.SnippetsModel
	delete   *views.DeleteModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.SnapshotStore, engine *domain.Engine) *App {
	return &App{
		store:    store,
		engine:   engine,
		state:    ViewBrowser,
		browser:  views.NewBrowserModel(store, engine),
		snippets: views.NewSnippetsModel(),
		delete:   views.NewDeleteModel(store),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.snippets.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToSnippetsMsg:
		a.state = ViewSnippets
		a.snippets.SetResult(msg.Title, msg.Snippets, msg.Commands)
		return a, a.snippets.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Snapshot)
		return a, a.delete.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()
	}

	// Delete results route back to the browser
	if a.state == ViewDelete {
		var cmd tea.Cmd
		_, cmd = a.delete.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); isKey && cmd != nil {
			a.state = ViewBrowser
		}
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSnippets:
		_, cmd = a.snippets.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSnippets:
		return a.snippets.View()
	case ViewDelete:
		return a.delete.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
