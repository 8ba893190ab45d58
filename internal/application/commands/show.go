package commands

import (
	"context"

	"skillet/internal/domain"
	"skillet/internal/ports"
)

// ShowSnapshotCommand loads one snapshot including its body
type ShowSnapshotCommand struct {
	store ports.SnapshotStore
	Ref   string
}

// NewShowSnapshotCommand creates a new ShowSnapshotCommand
func NewShowSnapshotCommand(store ports.SnapshotStore, ref string) *ShowSnapshotCommand {
	return &ShowSnapshotCommand{store: store, Ref: ref}
}

// Execute resolves the snapshot by ID or name
func (c *ShowSnapshotCommand) Execute(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := c.store.Get(c.Ref)
	if err != nil {
		return nil, wrapLookup(c.Ref, err)
	}
	return snap, nil
}
