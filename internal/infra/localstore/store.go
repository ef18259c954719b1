// Package localstore keeps the client's durable state: named JSON documents
// on disk, one file per slot. It is the Go analog of the browser's
// localStorage and backs both the saved session and the mock persistence
// overlay.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"starfund/internal/errors"
)

// Store reads and writes named JSON documents under a single directory.
// Writes are atomic (temp file + rename) so a crash never leaves a slot
// half-written.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates the storage directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the named document into v. It returns false when the slot is
// absent. A document that fails to parse is cleared and reported as absent:
// corrupt local state must never take the client down.
func (s *Store) Load(name string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, errors.Wrapf(err, "read %s", name)
	}

	if err := json.Unmarshal(data, v); err != nil {
		_ = os.Remove(path)

		return false, nil
	}

	return true, nil
}

// Save writes v as the named document.
func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", name)
	}

	path := s.path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", name)
	}

	return nil
}

// Delete removes the named document. Removing an absent slot is not an error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete %s", name)
	}

	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
