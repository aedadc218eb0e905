package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIBase)
	assert.Equal(t, 15*time.Second, cfg.FeedInterval)
	assert.Equal(t, StateStoreSQL, cfg.StateStore)
	assert.Equal(t, "PUT", cfg.BookingStatusMethod)
	assert.True(t, cfg.FeedFailOpen)
	assert.Equal(t, 1500*time.Millisecond, cfg.RedirectDelay)
	assert.Equal(t, 10*time.Minute, cfg.FeedIdleTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE", "https://hub.example.com/")
	t.Setenv("FEED_INTERVAL", "5s")
	t.Setenv("FEED_FAIL_OPEN", "false")
	t.Setenv("BOOKING_STATUS_METHOD", "patch")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://hub.example.com", cfg.APIBase)
	assert.Equal(t, 5*time.Second, cfg.FeedInterval)
	assert.False(t, cfg.FeedFailOpen)
	assert.Equal(t, "PATCH", cfg.BookingStatusMethod)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "web.yaml")
	content := []byte("api_base: http://backend:9090\nfeed_interval: 30s\nfeed_fail_open: false\nstate_store: redis\nredis:\n  addr: cache:6379\n  db: 2\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("FEED_INTERVAL", "20s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9090", cfg.APIBase)
	assert.Equal(t, 20*time.Second, cfg.FeedInterval)
	assert.Equal(t, StateStoreRedis, cfg.StateStore)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.False(t, cfg.FeedFailOpen)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad interval":    {"FEED_INTERVAL": "soon"},
		"zero interval":   {"FEED_INTERVAL": "0s"},
		"bad method":      {"BOOKING_STATUS_METHOD": "POST"},
		"bad store":       {"STATE_STORE": "mongo"},
		"bad api base":    {"API_BASE": "localhost:8080"},
		"prod default":    {"APP_ENV": "production", "COOKIE_SECURE": "true"},
		"prod not secure": {"APP_ENV": "production", "CLIENT_SECRET": "s3cr3t"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
