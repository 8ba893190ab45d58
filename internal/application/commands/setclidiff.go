package commands

import (
	"context"

	"skillet/internal/domain"
	"skillet/internal/ports"
)

// SetCLIDiffCommand renders the change between two snapshots as set commands
type SetCLIDiffCommand struct {
	store    ports.SnapshotStore
	engine   *domain.Engine
	Previous string
	Latest   string
}

// NewSetCLIDiffCommand creates a new SetCLIDiffCommand
func NewSetCLIDiffCommand(store ports.SnapshotStore, engine *domain.Engine, previous, latest string) *SetCLIDiffCommand {
	return &SetCLIDiffCommand{
		store:    store,
		engine:   engine,
		Previous: previous,
		Latest:   latest,
	}
}

// Execute resolves both snapshots and returns the set-command diff
func (c *SetCLIDiffCommand) Execute(ctx context.Context) ([]string, error) {
	previous, latest, err := loadPair(c.store, c.Previous, c.Latest)
	if err != nil {
		return nil, err
	}
	return c.engine.SetCommandDiff(previous.Body, latest.Body)
}
