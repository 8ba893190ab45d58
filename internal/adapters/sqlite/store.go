package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"skillet/internal/application"
	"skillet/internal/domain"
	"skillet/internal/ports"

	_ "modernc.org/sqlite"
)

// Store implements ports.SnapshotStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements SnapshotStore
var _ ports.SnapshotStore = (*Store)(nil)

// NewStore creates a new SQLite snapshot store
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store at the given database path
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			device TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL,
			taken_at INTEGER NOT NULL,
			body TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores a snapshot, replacing any existing one with the same name
func (s *Store) Save(snap *domain.Snapshot) (int64, error) {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (name, device, source, taken_at, body)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			device = excluded.device,
			source = excluded.source,
			taken_at = excluded.taken_at,
			body = excluded.body
	`, snap.Name, snap.Device, snap.Source, snap.TakenAt.Unix(), snap.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to save snapshot: %w", err)
	}

	// LastInsertId is stale when the upsert took the update arm
	var id int64
	if err := s.db.QueryRow(`SELECT id FROM snapshots WHERE name = ?`, snap.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to resolve snapshot id: %w", err)
	}
	return id, nil
}

// Get resolves a snapshot by numeric ID or by name
func (s *Store) Get(ref string) (*domain.Snapshot, error) {
	row := s.db.QueryRow(`
		SELECT id, name, device, source, taken_at, body
		FROM snapshots WHERE name = ?
	`, ref)

	snap, err := scanSnapshot(row, true)
	if err == sql.ErrNoRows {
		if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
			row = s.db.QueryRow(`
				SELECT id, name, device, source, taken_at, body
				FROM snapshots WHERE id = ?
			`, id)
			snap, err = scanSnapshot(row, true)
		}
	}
	if err == sql.ErrNoRows {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// List returns all snapshots, newest first, without bodies
func (s *Store) List() ([]domain.Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, name, device, source, taken_at
		FROM snapshots ORDER BY taken_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Snapshot
	for rows.Next() {
		var snap domain.Snapshot
		var takenAt int64
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Device, &snap.Source, &takenAt); err != nil {
			return nil, err
		}
		snap.TakenAt = time.Unix(takenAt, 0).UTC()
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Delete removes a snapshot by numeric ID or by name
func (s *Store) Delete(ref string) error {
	res, err := s.db.Exec(`DELETE FROM snapshots WHERE name = ?`, ref)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
			res, err = s.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
			if err != nil {
				return err
			}
			if n, err = res.RowsAffected(); err != nil {
				return err
			}
		}
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner, withBody bool) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	var takenAt int64

	dest := []any{&snap.ID, &snap.Name, &snap.Device, &snap.Source, &takenAt}
	if withBody {
		dest = append(dest, &snap.Body)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	snap.TakenAt = time.Unix(takenAt, 0).UTC()
	return &snap, nil
}
