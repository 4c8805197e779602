package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JOTTER_ADDR", ":9090")
	t.Setenv("JOTTER_DB_PATH", "/tmp/notes.db")
	t.Setenv("JOTTER_JWT_SECRET", "super")
	t.Setenv("JOTTER_TOKEN_TTL", "15m")

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.EqualValues(t, ":9090", config.Addr)
	assert.EqualValues(t, "/tmp/notes.db", config.DatabasePath)
	assert.EqualValues(t, "super", config.JWTSecret)
	assert.EqualValues(t, 15*time.Minute, config.TokenTTL)
}

func TestConfigDefaults(t *testing.T) {
	var config Config
	config.applyDefaults()
	assert.EqualValues(t, ":8080", config.Addr)
	assert.EqualValues(t, "jotter.db", config.DatabasePath)
	assert.NotEmpty(t, config.JWTSecret)
	assert.EqualValues(t, time.Hour, config.TokenTTL)
}
