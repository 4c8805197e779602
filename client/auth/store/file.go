package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
)

// FileStore persists the session token to a JSON file. It is a lightweight
// way to survive process restarts in CLI or single-host services.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a Store that persists the token at the given path.
// Parent directories are created on the first Save.
func NewFileStore(path string) Store {
	return &FileStore{path: path}
}

func (f *FileStore) Save(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(&oauth2.Token{AccessToken: token})
}

func (f *FileStore) Load() (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	snap, err := f.load()
	if err != nil {
		return "", err
	}
	if snap.Token == nil {
		return "", nil
	}
	return snap.Token.AccessToken, nil
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ---- persistence ----

type fileSnapshot struct {
	Token *oauth2.Token `json:"token,omitempty"`
}

func (f *FileStore) save(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(fileSnapshot{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) load() (*fileSnapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileSnapshot{}, nil
		}
		return nil, err
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
