package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotel-forecast/analytics"

	"github.com/spf13/viper"
)

const ENV_PREFIX = "HOTEL_FORECAST"

// Defaults
const DEFAULT_SERVER_ADDR = ":8080"
const DEFAULT_SHUTDOWN_TIMEOUT = 5 * time.Second
const DEFAULT_DAILY_BOOKINGS_SOURCE = "data/daily_bookings.csv"
const DEFAULT_FORECAST_SOURCE = "data/forecast_results.csv"
const DEFAULT_HISTORY_WINDOW = analytics.DefaultHistoryWindow
const DEFAULT_BUCKET_SIZE = analytics.DefaultBucketSize
const DEFAULT_REDIS_ADDRESS = "redis:6379"
const DEFAULT_CACHE_REFRESH_INTERVAL = 5 * time.Minute
const DEFAULT_HTTP_SOURCE_TIMEOUT = 10 * time.Second

const CACHE_BACKEND_MEMORY = "memory"
const CACHE_BACKEND_REDIS = "redis"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DataConfig locates the two input tables. Each source is a file path
// (relative paths resolve against BaseDir) or an http(s) URL.
type DataConfig struct {
	DailyBookingsSource string        `mapstructure:"daily_bookings_source"`
	ForecastSource      string        `mapstructure:"forecast_source"`
	HTTPTimeout         time.Duration `mapstructure:"http_timeout"`
}

type DashboardConfig struct {
	HistoryWindow int `mapstructure:"history_window"`
	BucketSize    int `mapstructure:"bucket_size"`
}

type CacheConfig struct {
	Backend         string        `mapstructure:"backend"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file plus HOTEL_FORECAST_* environment
// variables. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic("default configuration must load: " + err.Error())
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DEFAULT_SERVER_ADDR)
	v.SetDefault("server.shutdown_timeout", DEFAULT_SHUTDOWN_TIMEOUT)

	v.SetDefault("data.daily_bookings_source", DEFAULT_DAILY_BOOKINGS_SOURCE)
	v.SetDefault("data.forecast_source", DEFAULT_FORECAST_SOURCE)
	v.SetDefault("data.http_timeout", DEFAULT_HTTP_SOURCE_TIMEOUT)

	v.SetDefault("dashboard.history_window", DEFAULT_HISTORY_WINDOW)
	v.SetDefault("dashboard.bucket_size", DEFAULT_BUCKET_SIZE)

	v.SetDefault("cache.backend", CACHE_BACKEND_MEMORY)
	v.SetDefault("cache.refresh_interval", DEFAULT_CACHE_REFRESH_INTERVAL)

	v.SetDefault("redis.addr", DEFAULT_REDIS_ADDRESS)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Data.DailyBookingsSource == "" {
		return fmt.Errorf("data.daily_bookings_source is required")
	}
	if c.Data.ForecastSource == "" {
		return fmt.Errorf("data.forecast_source is required")
	}
	if c.Data.HTTPTimeout <= 0 {
		return fmt.Errorf("data.http_timeout must be positive")
	}
	if c.Dashboard.HistoryWindow < 1 {
		return fmt.Errorf("dashboard.history_window must be at least 1")
	}
	if c.Dashboard.BucketSize < 1 {
		return fmt.Errorf("dashboard.bucket_size must be at least 1")
	}
	switch c.Cache.Backend {
	case CACHE_BACKEND_MEMORY:
	case CACHE_BACKEND_REDIS:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when cache.backend is redis")
		}
	default:
		return fmt.Errorf("cache.backend must be one of: memory, redis")
	}
	if c.Cache.RefreshInterval < 0 {
		return fmt.Errorf("cache.refresh_interval must not be negative")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// ResolvePath anchors a relative data path at BaseDir. URLs and absolute paths are returned unchanged.
func ResolvePath(source string) string {
	if IsURL(source) || filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(BaseDir(), source)
}

// IsURL reports whether a data source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
