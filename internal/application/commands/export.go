package commands

import (
	"context"

	"skillet/internal/domain"
	"skillet/internal/ports"
)

// ExportCommand diffs two snapshots and writes the patch set to a directory
type ExportCommand struct {
	store    ports.SnapshotStore
	engine   *domain.Engine
	writer   ports.PatchWriter
	Previous string
	Latest   string
	Dir      string
	SetName  string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store ports.SnapshotStore, engine *domain.Engine, writer ports.PatchWriter, previous, latest, dir, setName string) *ExportCommand {
	return &ExportCommand{
		store:    store,
		engine:   engine,
		writer:   writer,
		Previous: previous,
		Latest:   latest,
		Dir:      dir,
		SetName:  setName,
	}
}

// Execute runs the diff and materializes the result. Returns the written
// paths, manifest first.
func (c *ExportCommand) Execute(ctx context.Context) ([]string, error) {
	diff := NewDiffCommand(c.store, c.engine, c.Previous, c.Latest)
	snippets, err := diff.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return c.writer.WritePatchSet(c.Dir, c.SetName, snippets)
}
