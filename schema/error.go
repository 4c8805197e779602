package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionExpired reports that a protected endpoint rejected the stored
// token. Callers decide whether to clear the token and sign in again.
var ErrSessionExpired = errors.New("session expired")

// StatusError represents a reply whose status code did not match the one
// expected for the call, preserving the raw body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

// NewStatusError creates a new status error
func NewStatusError(statusCode int, body string) *StatusError {
	return &StatusError{StatusCode: statusCode, Body: body}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %v: %v", e.StatusCode, strings.TrimSpace(e.Body))
}
