package server

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotterhq/jotter/schema"
)

func testStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("users", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		user, err := store.AddUser(ctx, "ada@example.com", "hash-1")
		require.NoError(t, err)
		assert.NotEqualValues(t, 0, user.ID)
		assert.EqualValues(t, "ada@example.com", user.Email)

		_, err = store.AddUser(ctx, "ada@example.com", "hash-2")
		assert.True(t, errors.Is(err, ErrEmailTaken))

		found, err := store.LookupUser(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.EqualValues(t, "hash-1", found.PasswordHash)

		_, err = store.LookupUser(ctx, "nobody@example.com")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("notes", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		first, err := store.AddNote(ctx, "ada@example.com", &schema.NoteRequest{Title: "first", Content: "a"}, now)
		require.NoError(t, err)
		second, err := store.AddNote(ctx, "ada@example.com", &schema.NoteRequest{Title: "second", Content: "b"}, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)

		notes, err := store.ListNotes(ctx, "ada@example.com")
		require.NoError(t, err)
		if assert.Len(t, notes, 2) {
			// newest first
			assert.EqualValues(t, second.ID, notes[0].ID)
			assert.EqualValues(t, first.ID, notes[1].ID)
			assert.EqualValues(t, now.Add(time.Minute), notes[0].CreatedAt)
		}

		updated, err := store.UpdateNote(ctx, "ada@example.com", first.ID, &schema.NoteRequest{Title: "renamed", Content: "c"})
		require.NoError(t, err)
		assert.EqualValues(t, "renamed", updated.Title)
		assert.EqualValues(t, first.CreatedAt, updated.CreatedAt)

		_, err = store.UpdateNote(ctx, "ada@example.com", 9999, &schema.NoteRequest{Title: "x", Content: "y"})
		assert.True(t, errors.Is(err, ErrNotFound))

		assert.NoError(t, store.DeleteNote(ctx, "ada@example.com", first.ID))
		assert.True(t, errors.Is(store.DeleteNote(ctx, "ada@example.com", first.ID), ErrNotFound))

		notes, err = store.ListNotes(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("owner scoping", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		note, err := store.AddNote(ctx, "ada@example.com", &schema.NoteRequest{Title: "private", Content: "x"}, now)
		require.NoError(t, err)

		notes, err := store.ListNotes(ctx, "eve@example.com")
		require.NoError(t, err)
		assert.Len(t, notes, 0)

		_, err = store.UpdateNote(ctx, "eve@example.com", note.ID, &schema.NoteRequest{Title: "stolen", Content: "y"})
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.True(t, errors.Is(store.DeleteNote(ctx, "eve@example.com", note.ID), ErrNotFound))

		notes, err = store.ListNotes(ctx, "ada@example.com")
		require.NoError(t, err)
		if assert.Len(t, notes, 1) {
			assert.EqualValues(t, "private", notes[0].Title)
		}
	})
}

func TestMemoryStoreSuite(t *testing.T) {
	testStoreSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestSQLiteStoreSuite(t *testing.T) {
	testStoreSuite(t, func(t *testing.T) Store {
		store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "jotter.db"))
		require.NoError(t, err)
		return store
	})
}

func TestSQLiteStorePersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jotter.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	_, err = store.AddNote(ctx, "ada@example.com", &schema.NoteRequest{Title: "keep", Content: "me"}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	notes, err := reopened.ListNotes(ctx, "ada@example.com")
	require.NoError(t, err)
	if assert.Len(t, notes, 1) {
		assert.EqualValues(t, "keep", notes[0].Title)
	}
}
