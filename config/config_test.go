package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotel-forecast/analytics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "data/daily_bookings.csv", cfg.Data.DailyBookingsSource)
	assert.Equal(t, "data/forecast_results.csv", cfg.Data.ForecastSource)
	assert.Equal(t, 60, cfg.Dashboard.HistoryWindow)
	assert.Equal(t, 7, cfg.Dashboard.BucketSize)
	assert.Equal(t, analytics.DefaultHistoryWindow, cfg.Dashboard.HistoryWindow)
	assert.Equal(t, analytics.DefaultBucketSize, cfg.Dashboard.BucketSize)
	assert.Equal(t, CACHE_BACKEND_MEMORY, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.RefreshInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  addr: ":9090"
dashboard:
  history_window: 30
cache:
  backend: redis
  refresh_interval: 1m
redis:
  addr: "localhost:6379"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("HOTEL_FORECAST_DASHBOARD_BUCKET_SIZE", "14")

	// Act
	cfg, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 30, cfg.Dashboard.HistoryWindow)
	assert.Equal(t, 14, cfg.Dashboard.BucketSize)
	assert.Equal(t, CACHE_BACKEND_REDIS, cfg.Cache.Backend)
	assert.Equal(t, time.Minute, cfg.Cache.RefreshInterval)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero window", func(c *Config) { c.Dashboard.HistoryWindow = 0 }},
		{"zero bucket", func(c *Config) { c.Dashboard.BucketSize = 0 }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = CACHE_BACKEND_REDIS; c.Redis.Addr = "" }},
		{"negative refresh", func(c *Config) { c.Cache.RefreshInterval = -time.Second }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"missing forecast source", func(c *Config) { c.Data.ForecastSource = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/app")

	assert.Equal(t, filepath.Join("/srv/app", "data", "x.csv"), ResolvePath("data/x.csv"))
	assert.Equal(t, "/abs/x.csv", ResolvePath("/abs/x.csv"))
	assert.Equal(t, "https://example.com/x.csv", ResolvePath("https://example.com/x.csv"))
}
