package ports

import "skillet/internal/domain"

// PatchWriter materializes an ordered patch set on disk.
type PatchWriter interface {
	// WritePatchSet writes one file per snippet plus a manifest into dir,
	// creating it if needed. Returns the written paths, manifest first.
	WritePatchSet(dir, name string, snippets []domain.Snippet) ([]string, error)
}
