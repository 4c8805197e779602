package schema

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError(t *testing.T) {
	err := NewStatusError(http.StatusConflict, "{\"detail\":\"Email already registered\"}\n")
	assert.EqualValues(t, http.StatusConflict, err.StatusCode)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "Email already registered")
	assert.False(t, strings.HasSuffix(err.Error(), "\n"))

	var statusErr *StatusError
	wrapped := fmt.Errorf("register: %w", err)
	if !assert.True(t, errors.As(wrapped, &statusErr)) {
		return
	}
	assert.EqualValues(t, http.StatusConflict, statusErr.StatusCode)
}

func TestErrSessionExpired(t *testing.T) {
	wrapped := fmt.Errorf("list notes: %w", ErrSessionExpired)
	assert.True(t, errors.Is(wrapped, ErrSessionExpired))
	assert.False(t, errors.Is(NewStatusError(http.StatusUnauthorized, ""), ErrSessionExpired))
}
