package server

import (
	"context"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// RunOptions are the command line options of the jotterd binary. Anything
// left unset falls back to the JOTTER_* environment.
type RunOptions struct {
	Addr         string `short:"a" long:"addr" description:"listen address"`
	DatabasePath string `short:"d" long:"db" description:"sqlite database path"`
	InMemory     bool   `long:"in-memory" description:"keep data in process memory only"`
}

// Run starts the service from command line arguments.
func Run(args []string) error {
	options := &RunOptions{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	// optional .env for local development
	_ = godotenv.Load()
	config, err := LoadConfigFromEnv()
	if err != nil {
		return err
	}
	if options.Addr != "" {
		config.Addr = options.Addr
	}
	if options.DatabasePath != "" {
		config.DatabasePath = options.DatabasePath
	}
	serverOptions := []Option{WithConfig(config)}
	if options.InMemory {
		serverOptions = append(serverOptions, WithStore(NewMemoryStore()))
	}
	srv, err := New(serverOptions...)
	if err != nil {
		return err
	}
	defer srv.store.Close()
	srv.logger.Info("listening", "addr", config.Addr)
	return srv.HTTP(context.Background(), "").ListenAndServe()
}
