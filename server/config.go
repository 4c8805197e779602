package server

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration.
type Config struct {
	Addr         string        `env:"JOTTER_ADDR"`
	DatabasePath string        `env:"JOTTER_DB_PATH"`
	JWTSecret    string        `env:"JOTTER_JWT_SECRET"`
	TokenTTL     time.Duration `env:"JOTTER_TOKEN_TTL"`
}

// LoadConfigFromEnv reads the configuration from JOTTER_* variables, falling
// back to defaults suitable for local development.
func LoadConfigFromEnv() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, err
	}
	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "jotter.db"
	}
	if c.JWTSecret == "" {
		// development fallback; set JOTTER_JWT_SECRET in production
		c.JWTSecret = "jotter-dev-secret"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 60 * time.Minute
	}
}
