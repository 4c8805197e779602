package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	token, err := s.Load()
	assert.NoError(t, err)
	assert.EqualValues(t, "", token)

	assert.NoError(t, s.Save("abc"))
	token, err = s.Load()
	assert.NoError(t, err)
	assert.EqualValues(t, "abc", token)

	assert.NoError(t, s.Save("def"))
	token, _ = s.Load()
	assert.EqualValues(t, "def", token)

	assert.NoError(t, s.Clear())
	token, err = s.Load()
	assert.NoError(t, err)
	assert.EqualValues(t, "", token)
	assert.NoError(t, s.Clear())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token.json")
	s := NewFileStore(path)

	token, err := s.Load()
	assert.NoError(t, err)
	assert.EqualValues(t, "", token)

	if !assert.NoError(t, s.Save("abc")) {
		return
	}
	token, err = s.Load()
	assert.NoError(t, err)
	assert.EqualValues(t, "abc", token)

	info, err := os.Stat(path)
	if assert.NoError(t, err) {
		assert.EqualValues(t, os.FileMode(0o600), info.Mode().Perm())
	}

	// a fresh instance sees the persisted token
	token, err = NewFileStore(path).Load()
	assert.NoError(t, err)
	assert.EqualValues(t, "abc", token)

	assert.NoError(t, s.Clear())
	token, err = s.Load()
	assert.NoError(t, err)
	assert.EqualValues(t, "", token)
	assert.NoError(t, s.Clear())
}

func TestFileStoreCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}
