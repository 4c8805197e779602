package server

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/jotterhq/jotter/schema"
)

// SQLiteStore persists users and notes in a sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens, and if needed creates, the database at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	ret := &SQLiteStore{db: db}
	if err = ret.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return ret, nil
}

func (s *SQLiteStore) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS notes_owner ON notes(owner)`,
	}
	for _, statement := range statements {
		if _, err := s.db.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) AddUser(ctx context.Context, email, passwordHash string) (*User, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM users WHERE email = ?", email).Scan(&count); err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	createdAt := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users(email, password_hash, created_at) VALUES(?, ?, ?)",
		email, passwordHash, createdAt.UnixMilli())
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &User{ID: id, Email: email, PasswordHash: passwordHash, CreatedAt: createdAt}, nil
}

func (s *SQLiteStore) LookupUser(ctx context.Context, email string) (*User, error) {
	var user User
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?",
		email).Scan(&user.ID, &user.Email, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.CreatedAt = fromMillis(createdAt)
	return &user, nil
}

func (s *SQLiteStore) AddNote(ctx context.Context, owner string, note *schema.NoteRequest, createdAt time.Time) (*schema.Note, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO notes(owner, title, content, created_at) VALUES(?, ?, ?, ?)",
		owner, note.Title, note.Content, createdAt.UnixMilli())
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &schema.Note{ID: id, Title: note.Title, Content: note.Content, CreatedAt: fromMillis(createdAt.UnixMilli())}, nil
}

func (s *SQLiteStore) ListNotes(ctx context.Context, owner string) ([]schema.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, content, created_at FROM notes WHERE owner = ? ORDER BY id DESC",
		owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ret []schema.Note
	for rows.Next() {
		var note schema.Note
		var createdAt int64
		if err = rows.Scan(&note.ID, &note.Title, &note.Content, &createdAt); err != nil {
			return nil, err
		}
		note.CreatedAt = fromMillis(createdAt)
		ret = append(ret, note)
	}
	return ret, rows.Err()
}

func (s *SQLiteStore) UpdateNote(ctx context.Context, owner string, id int64, note *schema.NoteRequest) (*schema.Note, error) {
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT created_at FROM notes WHERE id = ? AND owner = ?",
		id, owner).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err = s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ? WHERE id = ? AND owner = ?",
		note.Title, note.Content, id, owner); err != nil {
		return nil, err
	}
	return &schema.Note{ID: id, Title: note.Title, Content: note.Content, CreatedAt: fromMillis(createdAt)}, nil
}

func (s *SQLiteStore) DeleteNote(ctx context.Context, owner string, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ? AND owner = ?", id, owner)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
