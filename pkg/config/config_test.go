package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 10, cfg.RecentSearchLimit)
	assert.False(t, cfg.ClearCartOnPayment)
	assert.Empty(t, cfg.CatalogFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_IDLE_TTL", "5m")
	t.Setenv("CLEAR_CART_ON_PAYMENT", "true")
	t.Setenv("RECENT_SEARCH_LIMIT", "not-a-number")
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTTL)
	assert.True(t, cfg.ClearCartOnPayment)
	assert.Equal(t, 10, cfg.RecentSearchLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=staging\nLOG_LEVEL=debug\n"), 0o600))

	t.Setenv("APP_ENV", "prod")
	// restored by t.Setenv, unset so the file value applies
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
}
