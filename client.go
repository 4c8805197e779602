package jotter

import (
	"os"
	"path/filepath"
	"time"

	"github.com/jotterhq/jotter/client"
	"github.com/jotterhq/jotter/client/auth/store"
)

// ClientOptions
//
// defines options for configuring a notes client.
type ClientOptions struct {
	BaseURL    string `yaml:"baseURL" json:"baseURL,omitempty"  short:"u" long:"base-url" description:"notes service base URL"`
	TokenPath  string `yaml:"tokenPath" json:"tokenPath,omitempty"  short:"t" long:"token-path" description:"session token file"`
	TimeoutSec int    `yaml:"timeoutSec" json:"timeoutSec,omitempty"  long:"timeout" description:"request timeout in seconds"`

	// Store allows injecting a token store so sessions survive across
	// multiple client instances (e.g., a shared in-memory store in tests).
	Store store.Store `yaml:"-" json:"-"`
}

func (c *ClientOptions) Init() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8080"
	}
	if c.TokenPath == "" {
		c.TokenPath = defaultTokenPath()
	}
	if c.TimeoutSec <= 0 {
		c.TimeoutSec = 30
	}
}

// defaultTokenPath locates the per-user session file.
func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "jotter-token.json"
	}
	return filepath.Join(home, ".jotter", "token.json")
}

// NewClient creates a notes client with token persistence configured via ClientOptions.
func NewClient(options *ClientOptions) (*client.Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	tokenStore := options.Store
	if tokenStore == nil {
		tokenStore = store.NewFileStore(options.TokenPath)
	}
	return client.New(options.BaseURL, tokenStore,
		client.WithTimeout(time.Duration(options.TimeoutSec)*time.Second))
}
