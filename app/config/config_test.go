package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load reads configs/base.yaml relative to the working directory; tests
// run from this package directory, so only defaults and env apply.

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "data/badger", cfg.DB.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"https://www.codenixlabs.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5, cfg.Featured.DefaultLimit)

	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9999")
	t.Setenv("APP_DB_PATH", "/tmp/blog-test")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "/tmp/blog-test", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvMultiWordKeys(t *testing.T) {
	t.Setenv("APP_SERVER_READ_TIMEOUT", "30s")
	t.Setenv("APP_FEATURED_DEFAULT_LIMIT", "3")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3, cfg.Featured.DefaultLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg, err = Load()
	require.NoError(t, err)
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestAddr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 4000}
	assert.Equal(t, "127.0.0.1:4000", cfg.Addr())
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(dir+"/configs", 0o755))
	yaml := []byte("server:\n  port: 8123\n")
	require.NoError(t, os.WriteFile(dir+"/configs/base.yaml", yaml, 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
	// Untouched keys keep their defaults.
	assert.Equal(t, "data/badger", cfg.DB.Path)
}
