// Package session holds the authenticated identity for the lifetime of the
// client and persists it across restarts, the way a browser keeps the
// current user in localStorage.
package session

import (
	"log/slog"
	"sync"

	"starfund/internal/domain/entity"
	"starfund/internal/infra/localstore"
)

const currentUserDoc = "currentUser"

// Store is the single holder of session state. All reads and writes go
// through it; nothing else touches the persisted identity.
type Store struct {
	mu      sync.RWMutex
	store   *localstore.Store
	logger  *slog.Logger
	current *entity.User
}

// New creates the session store and restores any persisted identity. A
// corrupt or unreadable document clears the session instead of failing
// startup.
func New(store *localstore.Store, logger *slog.Logger) *Store {
	s := &Store{store: store, logger: logger}

	var user entity.User
	found, err := store.Load(currentUserDoc, &user)
	if err != nil {
		logger.Warn("session restore failed, starting signed out", slog.Any("error", err))

		return s
	}
	if found && user.Token != "" {
		s.current = &user
	}

	return s
}

// Set replaces the session identity and persists it.
func (s *Store) Set(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(currentUserDoc, user); err != nil {
		return err
	}
	copied := *user
	s.current = &copied

	return nil
}

// Clear signs the user out and removes the persisted identity.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	return s.store.Delete(currentUserDoc)
}

// Current returns a copy of the signed-in identity, or nil.
func (s *Store) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	copied := *s.current

	return &copied
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// Role returns the signed-in user's role, or the empty role when signed out.
func (s *Store) Role() entity.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}

	return s.current.Role
}

// Token returns the bearer token of the signed-in user, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}

	return s.current.Token
}
