package commands

import (
	"context"
	"time"

	"skillet/internal/application"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

// ImportCommand stores an externally supplied configuration document as a
// snapshot
type ImportCommand struct {
	store  ports.SnapshotStore
	Name   string
	Device string
	Body   string
	now    func() time.Time
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(store ports.SnapshotStore, name, device, body string) *ImportCommand {
	return &ImportCommand{
		store:  store,
		Name:   name,
		Device: device,
		Body:   body,
		now:    time.Now,
	}
}

// Execute validates the document and persists it
func (c *ImportCommand) Execute(ctx context.Context) (*domain.Snapshot, error) {
	if err := application.ValidateSnapshotName(c.Name); err != nil {
		return nil, err
	}
	if _, err := domain.ParseString(c.Body); err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		Name:    c.Name,
		Device:  c.Device,
		Source:  "imported",
		TakenAt: c.now(),
		Body:    c.Body,
	}
	id, err := c.store.Save(snap)
	if err != nil {
		return nil, err
	}
	snap.ID = id
	return snap, nil
}
