// Package transport implements an http.RoundTripper that decorates outgoing
// requests with the JSON content type and, for requests marked via WithAuth,
// the bearer Authorization header loaded from the session token store.
//
// The RoundTripper backs the higher-level notes client but can also be used
// directly to secure arbitrary HTTP traffic against the service.
package transport
