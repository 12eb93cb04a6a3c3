// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers a .env file, an optional YAML file and environment variables on top.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// DataSource selects the dataset provider: builtin, file or sqlite.
	DataSource string `koanf:"data_source" validate:"oneof=builtin file sqlite"`

	// DataPath is the YAML dataset read by the file source.
	DataPath string `koanf:"data_path" validate:"required_if=DataSource file"`

	// SQLiteDSN is the database opened by the sqlite source.
	SQLiteDSN string `koanf:"sqlite_dsn" validate:"required_if=DataSource sqlite"`

	// OptionCacheSize bounds the memoized filter option sets. Zero or less is unbounded.
	OptionCacheSize int `koanf:"option_cache_size"`

	// ShutdownTimeoutS bounds graceful HTTP shutdown, in seconds.
	ShutdownTimeoutS int `koanf:"shutdown_timeout_s" validate:"gt=0"`
}

// New creates a Config with defaults. The context is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":9080",
		DataSource:       "builtin",
		OptionCacheSize:  256,
		ShutdownTimeoutS: 10,
	}
}

// ShutdownTimeout returns ShutdownTimeoutS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutS) * time.Second
}
