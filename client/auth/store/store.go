package store

import "sync"

// Store is a pluggable persistence layer for the session token.
// The in-memory default is fine for unit tests; use the file store to
// keep a session across process restarts.
type Store interface {
	// Save writes the token, replacing any previous one. Saving an empty
	// token is equivalent to Clear.
	Save(token string) error

	// Load returns the stored token, or an empty string when none is stored.
	Load() (string, error)

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

func (m *memoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryStore) Load() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *memoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// NewMemoryStore creates an in-memory token store.
func NewMemoryStore() Store {
	return &memoryStore{}
}
