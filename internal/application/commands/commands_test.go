package commands

import (
	"context"
	"strconv"

	"skillet/internal/application"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

// fakeStore is an in-memory SnapshotStore for command tests
type fakeStore struct {
	snapshots map[string]*domain.Snapshot
	nextID    int64
}

var _ ports.SnapshotStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: make(map[string]*domain.Snapshot)}
}

func (s *fakeStore) Open(string) error { return nil }
func (s *fakeStore) Close() error      { return nil }

func (s *fakeStore) Save(snap *domain.Snapshot) (int64, error) {
	if existing, ok := s.snapshots[snap.Name]; ok {
		snap.ID = existing.ID
	} else {
		s.nextID++
		snap.ID = s.nextID
	}
	s.snapshots[snap.Name] = snap
	return snap.ID, nil
}

func (s *fakeStore) Get(ref string) (*domain.Snapshot, error) {
	if snap, ok := s.snapshots[ref]; ok {
		return snap, nil
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for _, snap := range s.snapshots {
			if snap.ID == id {
				return snap, nil
			}
		}
	}
	return nil, application.ErrNotFound
}

func (s *fakeStore) List() ([]domain.Snapshot, error) {
	var out []domain.Snapshot
	for _, snap := range s.snapshots {
		out = append(out, *snap)
	}
	return out, nil
}

func (s *fakeStore) Delete(ref string) error {
	if _, ok := s.snapshots[ref]; !ok {
		return application.ErrNotFound
	}
	delete(s.snapshots, ref)
	return nil
}

// fakeDevice serves canned configuration documents
type fakeDevice struct {
	configs    map[ports.ConfigSource]string
	facts      map[string]string
	connectErr error
	connected  bool
}

var _ ports.Device = (*fakeDevice)(nil)

func (d *fakeDevice) Connect(context.Context) error {
	if d.connectErr != nil {
		return d.connectErr
	}
	d.connected = true
	return nil
}

func (d *fakeDevice) GetConfiguration(_ context.Context, source ports.ConfigSource) (string, error) {
	return d.configs[source], nil
}

func (d *fakeDevice) Facts(context.Context) (map[string]string, error) {
	return d.facts, nil
}

// fakeWriter records what would be written
type fakeWriter struct {
	dir      string
	name     string
	snippets []domain.Snippet
}

var _ ports.PatchWriter = (*fakeWriter)(nil)

func (w *fakeWriter) WritePatchSet(dir, name string, snippets []domain.Snippet) ([]string, error) {
	w.dir, w.name, w.snippets = dir, name, snippets
	paths := []string{dir + "/" + name + ".skillet.yaml"}
	for _, s := range snippets {
		paths = append(paths, dir+"/"+s.Name+".xml")
	}
	return paths, nil
}

func quietEngine() *domain.Engine {
	return domain.NewEngine(
		domain.WithLogger(func(string, ...any) {}),
		domain.WithNameSource(func(int) int { return 7 }),
	)
}
