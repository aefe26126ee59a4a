// Package session keeps the per-user pending-input state in process memory.
// The state is deliberately volatile: a restart drops every pending prompt
// and users simply start over.
package session

import (
	"sync"

	"github.com/hetmobile/hetbot/internal/domain"
)

// Store is a concurrency-safe user_id -> SessionState map.
type Store struct {
	mu     sync.RWMutex
	states map[int64]domain.SessionState
}

// New creates an empty session store.
func New() *Store {
	return &Store{states: make(map[int64]domain.SessionState)}
}

// Get returns the user's state, defaulting to SessionNone.
func (s *Store) Get(userID int64) domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.states[userID]; ok {
		return st
	}
	return domain.SessionNone
}

// Set records the user's state.
func (s *Store) Set(userID int64, st domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = st
}

// Clear resets the user back to SessionNone.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
