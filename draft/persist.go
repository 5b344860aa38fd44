package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caldertours/tripquote/domain"
)

// Storage keys for the two store instances. The version suffix is part of
// the key: a breaking change to the persisted shape bumps the version and
// abandons the old snapshot instead of migrating it.
const (
	PackageDraftsKey = "package-drafts.v1"
	TripPlannerKey   = "trip-planner.v1"
)

// Persister loads and saves the full keyed collection map of a Store.
// Implementations must not retain the map passed to Save.
type Persister interface {
	// Load returns the previously saved map, or (nil, nil) when nothing has
	// been saved yet.
	Load() (map[string][]domain.LineItem, error)
	Save(map[string][]domain.LineItem) error
}

// FilePersister stores a Store's state as one JSON file per store instance,
// named by its versioned storage key, so independent stores sharing a data
// directory never collide.
type FilePersister struct {
	path string
}

// NewFilePersister returns a FilePersister writing to
// <dir>/<storageKey>.json.
func NewFilePersister(dir, storageKey string) *FilePersister {
	return &FilePersister{path: filepath.Join(dir, storageKey+".json")}
}

// Load reads and decodes the snapshot file. A missing file is not an error —
// it simply means no draft has been saved yet.
func (f *FilePersister) Load() (map[string][]domain.LineItem, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("draft.FilePersister.Load: %w", err)
	}
	var m map[string][]domain.LineItem
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("draft.FilePersister.Load: decode %s: %w", f.path, err)
	}
	return m, nil
}

// Save encodes m and writes it atomically: first to a temp file in the same
// directory, then renamed over the previous snapshot, so a crash mid-write
// never leaves a truncated file behind.
func (f *FilePersister) Save(m map[string][]domain.LineItem) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("draft.FilePersister.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("draft.FilePersister.Save: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("draft.FilePersister.Save: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("draft.FilePersister.Save: %w", err)
	}
	return nil
}

// Path returns the snapshot file location. Exposed for diagnostics.
func (f *FilePersister) Path() string {
	return f.path
}
