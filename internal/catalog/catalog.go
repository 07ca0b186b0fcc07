// Package catalog loads the three JSON documentation artifacts and provides
// read access to the section files they reference.
//
// The artifacts are produced by the extract pipeline and are immutable for
// the life of the process: Load reads them exactly once at startup and a
// missing artifact is fatal. The only mutable state in this package is the
// content store's LRU cache.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Artifact file names, relative to the data directory.
const (
	IndexFile  = "index.json"
	IconsFile  = "icons.json"
	ColorsFile = "colors.json"
)

// Catalog holds the loaded artifacts. It is read-only after Load.
type Catalog struct {
	Entries []Entry
	Icons   []Icon
	Colors  Colors

	dataDir string
}

// Load eagerly reads the three artifacts from dataDir. All three are
// required; any absence aborts with an error naming the expected path.
func Load(dataDir string) (*Catalog, error) {
	c := &Catalog{dataDir: dataDir}

	var g errgroup.Group
	g.Go(func() error {
		return loadArtifact(filepath.Join(dataDir, IndexFile), &c.Entries)
	})
	g.Go(func() error {
		return loadArtifact(filepath.Join(dataDir, IconsFile), &c.Icons)
	})
	g.Go(func() error {
		return loadArtifact(filepath.Join(dataDir, ColorsFile), &c.Colors)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

// loadArtifact decodes one JSON artifact into dst.
func loadArtifact(path string, dst any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("missing artifact %s: run `dskit-mcp extract` to generate it", path)
	}
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}
	return nil
}

// SectionPath resolves the conventional on-disk location of a section file.
func (c *Catalog) SectionPath(e Entry, s Section) string {
	return filepath.Join(c.dataDir, "content", string(e.Category), e.Name, string(s)+".md")
}
