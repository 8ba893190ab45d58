package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"skillet/internal/adapters/sqlite"
	"skillet/internal/adapters/tui"
	"skillet/internal/config"
	"skillet/internal/domain"
)

func main() {
	store := sqlite.NewStore()
	if err := store.Open(config.DBPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Engine log lines would corrupt the alt screen
	var opts []domain.Option
	if !config.Debug() {
		opts = append(opts, domain.WithLogger(func(string, ...any) {}))
	}
	engine := domain.NewEngine(opts...)

	app := tui.NewApp(store, engine)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
