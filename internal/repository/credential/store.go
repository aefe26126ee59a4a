// Package credential holds per-user provider API keys in process memory.
// Keys are never persisted: a restart forces users to re-enter them.
package credential

import "sync"

// Store is a concurrency-safe user_id -> API key map.
type Store struct {
	mu   sync.RWMutex
	keys map[int64]string
}

// New creates an empty credential store.
func New() *Store {
	return &Store{keys: make(map[int64]string)}
}

// Get returns the user's API key, if one is stored.
func (s *Store) Get(userID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[userID]
	return key, ok
}

// Set stores the user's API key, replacing any earlier one.
func (s *Store) Set(userID int64, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[userID] = key
}

// Clear forgets the user's API key.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, userID)
}
