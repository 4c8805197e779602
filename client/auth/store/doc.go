// Package store defines the session token store used by the client and the
// authorization helpers in the parent `auth` package.
//
// It ships with an in-memory implementation that is sufficient for most
// unit-test scenarios and a file-backed one that keeps the session across
// process restarts.
package store
