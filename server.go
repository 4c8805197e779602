package jotter

import (
	"time"

	"github.com/jotterhq/jotter/server"
)

// ServerOptions defines options for configuring a notes server.
type ServerOptions struct {
	Addr         string `yaml:"addr" json:"addr"  short:"a" long:"addr" description:"listen address"`
	DatabasePath string `yaml:"databasePath" json:"databasePath,omitempty"  short:"d" long:"db" description:"sqlite database path"`
	JWTSecret    string `yaml:"jwtSecret" json:"jwtSecret,omitempty"  long:"jwt-secret" description:"token signing secret"`
	TokenTTLMin  int    `yaml:"tokenTTLMin" json:"tokenTTLMin,omitempty"  long:"token-ttl" description:"token lifetime in minutes"`

	// Store allows injecting a prebuilt persistence backend, e.g.
	// server.NewMemoryStore() for tests or ephemeral deployments.
	Store server.Store `yaml:"-" json:"-"`
}

// NewServer creates a notes server configured via ServerOptions.
func NewServer(options *ServerOptions) (*server.Server, error) {
	if options == nil {
		options = &ServerOptions{}
	}
	config := server.Config{
		Addr:         options.Addr,
		DatabasePath: options.DatabasePath,
		JWTSecret:    options.JWTSecret,
	}
	if options.TokenTTLMin > 0 {
		config.TokenTTL = time.Duration(options.TokenTTLMin) * time.Minute
	}
	serverOptions := []server.Option{server.WithConfig(config)}
	if options.Store != nil {
		serverOptions = append(serverOptions, server.WithStore(options.Store))
	}
	return server.New(serverOptions...)
}
