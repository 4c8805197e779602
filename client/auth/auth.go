package auth

import (
	"github.com/jotterhq/jotter/client/auth/store"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

// JSONHeaders returns the header set for unauthenticated JSON calls.
func JSONHeaders() map[string]string {
	return map[string]string{headerContentType: contentTypeJSON}
}

// JSONHeadersWithAuth returns the JSON header set with a bearer Authorization
// header when the store holds a non-empty token. With no token the plain JSON
// headers are returned, letting the service reply 401 rather than failing the
// call locally.
func JSONHeadersWithAuth(tokenStore store.Store) (map[string]string, error) {
	headers := JSONHeaders()
	token, err := tokenStore.Load()
	if err != nil {
		return nil, err
	}
	if token != "" {
		headers[headerAuthorization] = "Bearer " + token
	}
	return headers, nil
}
