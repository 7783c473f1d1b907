package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one <collection>.json file per collection under a root
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated collection behind.
type FileStore struct {
	root string
}

// NewFileStore returns a file store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root %s: %w", dir, err)
	}
	return &FileStore{root: dir}, nil
}

func (s *FileStore) Driver() Driver { return DriverFile }

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.root, collection+".json")
}

func (s *FileStore) Load(collection string, out any) error {
	if !validCollection(collection) {
		return fmt.Errorf("%w: %s", ErrInvalidCollection, collection)
	}
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("storage: decode %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) Save(collection string, v any) error {
	if !validCollection(collection) {
		return fmt.Errorf("%w: %s", ErrInvalidCollection, collection)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", collection, err)
	}
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("storage: commit %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
