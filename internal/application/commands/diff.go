package commands

import (
	"context"
	"errors"

	"skillet/internal/application"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

// DiffCommand generates the ordered patch set between two stored snapshots
type DiffCommand struct {
	store    ports.SnapshotStore
	engine   *domain.Engine
	Previous string
	Latest   string
}

// NewDiffCommand creates a new DiffCommand
func NewDiffCommand(store ports.SnapshotStore, engine *domain.Engine, previous, latest string) *DiffCommand {
	return &DiffCommand{
		store:    store,
		engine:   engine,
		Previous: previous,
		Latest:   latest,
	}
}

// Execute resolves both snapshots and runs the diff engine
func (c *DiffCommand) Execute(ctx context.Context) ([]domain.Snippet, error) {
	previous, latest, err := loadPair(c.store, c.Previous, c.Latest)
	if err != nil {
		return nil, err
	}
	return c.engine.Diff(previous.Body, latest.Body)
}

func loadPair(store ports.SnapshotStore, previousRef, latestRef string) (*domain.Snapshot, *domain.Snapshot, error) {
	previous, err := store.Get(previousRef)
	if err != nil {
		return nil, nil, wrapLookup(previousRef, err)
	}
	latest, err := store.Get(latestRef)
	if err != nil {
		return nil, nil, wrapLookup(latestRef, err)
	}
	return previous, latest, nil
}

func wrapLookup(ref string, err error) error {
	if errors.Is(err, application.ErrNotFound) {
		return &application.SnapshotError{Ref: ref, Reason: "not found"}
	}
	return err
}
