package server

import (
	"log/slog"
	"time"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithConfig sets the service configuration.
func WithConfig(config Config) Option {
	return func(s *Server) error {
		s.config = config
		return nil
	}
}

// WithStore sets the persistence backend.
func WithStore(store Store) Option {
	return func(s *Server) error {
		s.store = store
		return nil
	}
}

// WithClock overrides the time source used for token and note timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) error {
		s.clock = clock
		return nil
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}
