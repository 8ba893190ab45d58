package commands

import (
	"context"

	"skillet/internal/ports"
)

// DeleteSnapshotCommand removes a snapshot
type DeleteSnapshotCommand struct {
	store ports.SnapshotStore
	Ref   string
}

// NewDeleteSnapshotCommand creates a new DeleteSnapshotCommand
func NewDeleteSnapshotCommand(store ports.SnapshotStore, ref string) *DeleteSnapshotCommand {
	return &DeleteSnapshotCommand{store: store, Ref: ref}
}

// Execute deletes the snapshot by ID or name
func (c *DeleteSnapshotCommand) Execute(ctx context.Context) error {
	if err := c.store.Delete(c.Ref); err != nil {
		return wrapLookup(c.Ref, err)
	}
	return nil
}
