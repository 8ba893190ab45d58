package exportdir

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"skillet/internal/domain"
	"skillet/internal/ports"
)

// Writer materializes a patch set as one XML file per snippet plus a
// YAML manifest describing where each snippet applies.
type Writer struct{}

// Ensure Writer implements PatchWriter
var _ ports.PatchWriter = (*Writer)(nil)

// NewWriter creates a new Writer
func NewWriter() *Writer {
	return &Writer{}
}

type manifest struct {
	Name     string          `yaml:"name"`
	Snippets []manifestEntry `yaml:"snippets"`
}

type manifestEntry struct {
	Name  string `yaml:"name"`
	XPath string `yaml:"xpath"`
	File  string `yaml:"file"`
}

// WritePatchSet writes the snippets under dir and returns the written
// paths, manifest first. Snippet files keep the patch set's apply order
// through the manifest.
func (w *Writer) WritePatchSet(dir, name string, snippets []domain.Snippet) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	m := manifest{Name: name}
	paths := []string{filepath.Join(dir, name+".skillet.yaml")}

	for _, s := range snippets {
		file := s.Name + ".xml"
		path := filepath.Join(dir, file)
		if err := os.WriteFile(path, []byte(s.Element+"\n"), 0644); err != nil {
			return nil, fmt.Errorf("failed to write snippet %s: %w", s.Name, err)
		}
		m.Snippets = append(m.Snippets, manifestEntry{
			Name:  s.Name,
			XPath: s.XPath,
			File:  file,
		})
		paths = append(paths, path)
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(paths[0], data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return paths, nil
}
