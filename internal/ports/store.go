package ports

import "skillet/internal/domain"

// SnapshotStore persists configuration snapshots so diffs can run against
// historical state without a device connection.
type SnapshotStore interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Save stores a snapshot and returns its assigned ID. Names are unique;
	// saving an existing name replaces the stored body.
	Save(snap *domain.Snapshot) (int64, error)

	// Get resolves a snapshot by numeric ID or by name.
	Get(ref string) (*domain.Snapshot, error)

	// List returns all snapshots, newest first, without bodies loaded.
	List() ([]domain.Snapshot, error)

	// Delete removes a snapshot by numeric ID or by name.
	Delete(ref string) error
}
