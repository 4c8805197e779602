package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jotterhq/jotter/internal/collection"
	"github.com/jotterhq/jotter/schema"
)

// MemoryStore keeps users and notes in process memory. It backs tests and
// the in-memory server mode; nothing survives a restart.
type MemoryStore struct {
	mu         sync.Mutex
	users      *collection.SyncMap[string, *User]
	notes      *collection.SyncMap[int64, *memoryNote]
	nextUserID int64
	nextNoteID int64
}

type memoryNote struct {
	owner string
	note  schema.Note
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: collection.NewSyncMap[string, *User](),
		notes: collection.NewSyncMap[int64, *memoryNote](),
	}
}

func (m *MemoryStore) AddUser(ctx context.Context, email, passwordHash string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users.Get(email); ok {
		return nil, ErrEmailTaken
	}
	m.nextUserID++
	user := &User{ID: m.nextUserID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	m.users.Put(email, user)
	return user, nil
}

func (m *MemoryStore) LookupUser(ctx context.Context, email string) (*User, error) {
	user, ok := m.users.Get(email)
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (m *MemoryStore) AddNote(ctx context.Context, owner string, note *schema.NoteRequest, createdAt time.Time) (*schema.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextNoteID++
	ret := schema.Note{ID: m.nextNoteID, Title: note.Title, Content: note.Content, CreatedAt: createdAt}
	m.notes.Put(ret.ID, &memoryNote{owner: owner, note: ret})
	return &ret, nil
}

func (m *MemoryStore) ListNotes(ctx context.Context, owner string) ([]schema.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ret []schema.Note
	m.notes.Range(func(id int64, record *memoryNote) bool {
		if record.owner == owner {
			ret = append(ret, record.note)
		}
		return true
	})
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID > ret[j].ID })
	return ret, nil
}

func (m *MemoryStore) UpdateNote(ctx context.Context, owner string, id int64, note *schema.NoteRequest) (*schema.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.notes.Get(id)
	if !ok || record.owner != owner {
		return nil, ErrNotFound
	}
	record.note.Title = note.Title
	record.note.Content = note.Content
	updated := record.note
	return &updated, nil
}

func (m *MemoryStore) DeleteNote(ctx context.Context, owner string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.notes.Get(id)
	if !ok || record.owner != owner {
		return ErrNotFound
	}
	m.notes.Delete(id)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
