package jotter_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotterhq/jotter"
	"github.com/jotterhq/jotter/client/auth/store"
	"github.com/jotterhq/jotter/schema"
	"github.com/jotterhq/jotter/server"
)

func TestClientServerRoundTrip(t *testing.T) {
	srv, err := jotter.NewServer(&jotter.ServerOptions{Store: server.NewMemoryStore(), JWTSecret: "round-trip-secret"})
	require.NoError(t, err)
	backend := httptest.NewServer(srv.Handler())
	defer backend.Close()

	notes, err := jotter.NewClient(&jotter.ClientOptions{BaseURL: backend.URL, Store: store.NewMemoryStore()})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, notes.Register(ctx, "alice@example.com", "secret1"))
	require.NoError(t, notes.Login(ctx, "alice@example.com", "secret1"))

	created, err := notes.CreateNote(ctx, &schema.NoteRequest{Title: "first", Content: "alpha"})
	if !assert.NoError(t, err) {
		return
	}
	assert.EqualValues(t, 1, created.ID)

	updated, err := notes.UpdateNote(ctx, created.ID, &schema.NoteRequest{Title: "renamed", Content: "beta"})
	if !assert.NoError(t, err) {
		return
	}
	assert.EqualValues(t, "renamed", updated.Title)

	items, err := notes.ListNotes(ctx)
	if !assert.NoError(t, err) {
		return
	}
	if assert.Len(t, items, 1) {
		assert.EqualValues(t, "renamed", items[0].Title)
		assert.EqualValues(t, "beta", items[0].Content)
	}

	require.NoError(t, notes.DeleteNote(ctx, created.ID))
	items, err = notes.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, notes.Logout(ctx))
	_, err = notes.ListNotes(ctx)
	assert.ErrorIs(t, err, schema.ErrSessionExpired)
}

func TestSessionSurvivesRestart(t *testing.T) {
	srv, err := jotter.NewServer(&jotter.ServerOptions{Store: server.NewMemoryStore()})
	require.NoError(t, err)
	backend := httptest.NewServer(srv.Handler())
	defer backend.Close()

	tokenPath := filepath.Join(t.TempDir(), "token.json")

	first, err := jotter.NewClient(&jotter.ClientOptions{BaseURL: backend.URL, TokenPath: tokenPath})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, first.Register(ctx, "bob@example.com", "secret1"))
	require.NoError(t, first.Login(ctx, "bob@example.com", "secret1"))
	_, err = first.CreateNote(ctx, &schema.NoteRequest{Title: "kept", Content: "still here"})
	require.NoError(t, err)

	// a fresh client picks the session up from the token file
	second, err := jotter.NewClient(&jotter.ClientOptions{BaseURL: backend.URL, TokenPath: tokenPath})
	require.NoError(t, err)
	items, err := second.ListNotes(ctx)
	if !assert.NoError(t, err) {
		return
	}
	if assert.Len(t, items, 1) {
		assert.EqualValues(t, "kept", items[0].Title)
	}
}
