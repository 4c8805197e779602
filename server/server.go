package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Server implements the notes service REST contract: account registration,
// bearer-token login and per-user note CRUD.
type Server struct {
	config Config
	store  Store
	clock  func() time.Time
	logger *slog.Logger
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		clock:  time.Now,
		logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	s.config.applyDefaults()
	if s.store == nil {
		store, err := NewSQLiteStore(s.config.DatabasePath)
		if err != nil {
			return nil, err
		}
		s.store = store
	}
	return s, nil
}

// Store returns the persistence backend.
func (s *Server) Store() Store {
	return s.store
}

// HTTP creates and returns an HTTP server bound to addr, falling back to the
// configured address.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.config.Addr
	}
	return &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
}
