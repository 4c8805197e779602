package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jotterhq/jotter/client/auth/store"
)

func TestJSONHeaders(t *testing.T) {
	headers := JSONHeaders()
	assert.EqualValues(t, map[string]string{"Content-Type": "application/json"}, headers)
}

func TestJSONHeadersWithAuth(t *testing.T) {
	tokenStore := store.NewMemoryStore()

	headers, err := JSONHeadersWithAuth(tokenStore)
	assert.NoError(t, err)
	assert.EqualValues(t, "application/json", headers["Content-Type"])
	_, ok := headers["Authorization"]
	assert.False(t, ok)

	assert.NoError(t, tokenStore.Save("abc123"))
	headers, err = JSONHeadersWithAuth(tokenStore)
	assert.NoError(t, err)
	assert.EqualValues(t, "Bearer abc123", headers["Authorization"])

	assert.NoError(t, tokenStore.Save(""))
	headers, err = JSONHeadersWithAuth(tokenStore)
	assert.NoError(t, err)
	_, ok = headers["Authorization"]
	assert.False(t, ok)
}

type faultyStore struct{}

func (faultyStore) Save(string) error     { return errors.New("store failure") }
func (faultyStore) Load() (string, error) { return "", errors.New("store failure") }
func (faultyStore) Clear() error          { return errors.New("store failure") }

func TestJSONHeadersWithAuthStoreFailure(t *testing.T) {
	_, err := JSONHeadersWithAuth(faultyStore{})
	assert.Error(t, err)
}
