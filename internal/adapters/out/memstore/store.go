// Package memstore provides an in-process CollectionStore for tests and
// single-node development runs. Values live in a map; there is no
// durability across restarts.
package memstore

import (
	"context"
	"sync"
)

// Store is a thread-safe in-memory CollectionStore.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Load returns a copy of the value under the key, or an empty slice for a
// key that has never been saved.
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

// Save replaces the value under the key.
func (s *Store) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}
