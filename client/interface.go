package client

import (
	"context"

	"github.com/jotterhq/jotter/schema"
)

// Interface defines the client interface for all exported methods
type Interface interface {
	// Register creates a new account
	Register(ctx context.Context, email, password string) error

	// Login authenticates and stores the session token
	Login(ctx context.Context, email, password string) error

	// Logout clears the stored session token
	Logout(ctx context.Context) error

	// ListNotes returns the user's notes, newest first
	ListNotes(ctx context.Context) ([]schema.Note, error)

	// CreateNote stores a new note
	CreateNote(ctx context.Context, note *schema.NoteRequest) (*schema.Note, error)

	// UpdateNote replaces the title and content of an existing note
	UpdateNote(ctx context.Context, id int64, note *schema.NoteRequest) (*schema.Note, error)

	// DeleteNote removes a note
	DeleteNote(ctx context.Context, id int64) error
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
