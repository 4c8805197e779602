// Package cli implements the jot command line for the notes service.
//
// Global flags select the service endpoint and session file, commands map
// one to one onto the client API:
//
//	jot register alice@example.com secret1
//	jot login alice@example.com secret1
//	jot add shopping "milk and eggs"
//	jot add meeting --file notes.txt
//	jot list
//	jot rm 1
//
// The session token obtained by login is kept in a file (JOT_TOKEN_PATH or
// ~/.jotter/token.json) and attached to every notes call until logout. When
// the service rejects the token the command fails with a hint to sign in
// again and the stale token is dropped.
package cli
