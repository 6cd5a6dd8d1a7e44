// Package session holds the client-side state the web UI keeps between
// visits: the signed-in user, the signed-in restaurant and the cart. Each
// store object is the single source of truth for its slice of state and
// mirrors every change to a local JSON file.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Store persists one JSON document to a file.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted document into v. It reports false when nothing
// has been persisted yet.
func (s *Store) Load(v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// Persist writes v as the new persisted document.
func (s *Store) Persist(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the persisted document. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
