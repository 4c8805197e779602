package transport

import (
	"net/http"

	"github.com/jotterhq/jotter/client/auth"
	"github.com/jotterhq/jotter/client/auth/store"
)

// RoundTripper attaches the JSON and bearer authorization headers computed by
// the parent auth package to outgoing requests. The bearer header is only
// attached to requests whose context was marked with WithAuth, so register
// and login traffic stays anonymous even when a token is stored.
type RoundTripper struct {
	store     store.Store
	transport http.RoundTripper
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemoryStore(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

// Store returns the token store backing this transport.
func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	headers := auth.JSONHeaders()
	if token := getAuthToken(ctx); token != "" {
		headers["Authorization"] = "Bearer " + token
	} else if isAuthenticated(ctx) {
		var err error
		if headers, err = auth.JSONHeadersWithAuth(r.store); err != nil {
			return nil, err
		}
	}
	next := clone(req)
	for key, value := range headers {
		if next.Header.Get(key) == "" {
			next.Header.Set(key, value)
		}
	}
	return r.transport.RoundTrip(next)
}
