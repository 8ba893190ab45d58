package commands

import (
	"context"
	"fmt"
	"time"

	"skillet/internal/application"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

// FetchCommand pulls a configuration from a device and stores it as a
// snapshot
type FetchCommand struct {
	device ports.Device
	store  ports.SnapshotStore
	Name   string
	Source ports.ConfigSource
	now    func() time.Time
}

// NewFetchCommand creates a new FetchCommand
func NewFetchCommand(device ports.Device, store ports.SnapshotStore, name string, source ports.ConfigSource) *FetchCommand {
	return &FetchCommand{
		device: device,
		store:  store,
		Name:   name,
		Source: source,
		now:    time.Now,
	}
}

// Execute connects, retrieves the configuration and persists the snapshot
func (c *FetchCommand) Execute(ctx context.Context) (*domain.Snapshot, error) {
	if c.device == nil {
		return nil, application.ErrNoDevice
	}

	name := c.Name
	if name == "" {
		name = fmt.Sprintf("%s-%s", c.Source, c.now().Format("20060102150405"))
	}
	if err := application.ValidateSnapshotName(name); err != nil {
		return nil, err
	}

	if err := c.device.Connect(ctx); err != nil {
		return nil, err
	}

	body, err := c.device.GetConfiguration(ctx, c.Source)
	if err != nil {
		return nil, err
	}
	// Reject anything the engine could not diff later.
	if _, err := domain.ParseString(body); err != nil {
		return nil, err
	}

	facts, err := c.device.Facts(ctx)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		Name:    name,
		Device:  facts["hostname"],
		Source:  string(c.Source),
		TakenAt: c.now(),
		Body:    body,
	}
	id, err := c.store.Save(snap)
	if err != nil {
		return nil, err
	}
	snap.ID = id
	return snap, nil
}
