package server

import (
	"context"
	"errors"
	"time"

	"github.com/jotterhq/jotter/schema"
)

var (
	// ErrNotFound reports a missing user or note.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken reports a registration with an email already on file.
	ErrEmailTaken = errors.New("email already registered")
)

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Store is the persistence layer for accounts and notes. Implementations
// scope every note operation to the owning account.
type Store interface {
	AddUser(ctx context.Context, email, passwordHash string) (*User, error)
	LookupUser(ctx context.Context, email string) (*User, error)
	AddNote(ctx context.Context, owner string, note *schema.NoteRequest, createdAt time.Time) (*schema.Note, error)
	ListNotes(ctx context.Context, owner string) ([]schema.Note, error)
	UpdateNote(ctx context.Context, owner string, id int64, note *schema.NoteRequest) (*schema.Note, error)
	DeleteNote(ctx context.Context, owner string, id int64) error
	Close() error
}
