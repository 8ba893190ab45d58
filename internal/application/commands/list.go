package commands

import (
	"context"

	"skillet/internal/domain"
	"skillet/internal/ports"
)

// ListSnapshotsCommand lists all stored snapshots
type ListSnapshotsCommand struct {
	store ports.SnapshotStore
}

// NewListSnapshotsCommand creates a new ListSnapshotsCommand
func NewListSnapshotsCommand(store ports.SnapshotStore) *ListSnapshotsCommand {
	return &ListSnapshotsCommand{store: store}
}

// Execute returns all snapshots, newest first
func (c *ListSnapshotsCommand) Execute(ctx context.Context) ([]domain.Snapshot, error) {
	return c.store.List()
}
