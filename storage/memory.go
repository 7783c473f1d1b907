package storage

import (
	"encoding/json"
	"fmt"
)

// MemoryStore holds collections as marshaled JSON in a map. Used by tests
// and as a throwaway backend; nothing survives the process.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Driver() Driver { return DriverMemory }

func (s *MemoryStore) Load(collection string, out any) error {
	if !validCollection(collection) {
		return fmt.Errorf("%w: %s", ErrInvalidCollection, collection)
	}
	data, ok := s.data[collection]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("storage: decode %s: %w", collection, err)
	}
	return nil
}

func (s *MemoryStore) Save(collection string, v any) error {
	if !validCollection(collection) {
		return fmt.Errorf("%w: %s", ErrInvalidCollection, collection)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", collection, err)
	}
	s.data[collection] = data
	return nil
}

func (s *MemoryStore) Close() error { return nil }
