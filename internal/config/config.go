// Package config loads server configuration from defaults, an optional
// YAML file, CT_-prefixed environment variables and command-line flags.
package config

import (
	"time"

	"github.com/evcraddock/client-tracker/internal/db"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CT_"

// Config is the top-level server configuration.
type Config struct {
	Server  Server  `yaml:"server" envPrefix:"SERVER_"`
	Storage Storage `yaml:"storage" envPrefix:"STORAGE_"`
	Log     Log     `yaml:"log" envPrefix:"LOG_"`
}

// Server holds HTTP listener settings.
type Server struct {
	// Address is the listen address in host:port form.
	// Env: CT_SERVER_ADDRESS
	Address string `yaml:"address" env:"ADDRESS"`

	// Env: CT_SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`

	// Env: CT_SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	// Env: CT_SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// Storage holds the database location.
type Storage struct {
	// Env: CT_STORAGE_DB_PATH
	DBPath string `yaml:"db_path" env:"DB_PATH"`
}

// Log holds logger settings.
type Log struct {
	// Dev switches to human-readable console output at debug level.
	// Nil means unset, so an explicit false still overrides a lower layer.
	// Env: CT_LOG_DEV
	Dev *bool `yaml:"dev" env:"DEV"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: CT_LOG_LEVEL
	Level string `yaml:"level" env:"LEVEL"`
}

// DevMode reports whether development logging is enabled.
func (l Log) DevMode() bool {
	return l.Dev != nil && *l.Dev
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	path, err := db.DefaultPath()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: Server{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: Storage{DBPath: path},
		Log:     Log{Level: "info"},
	}, nil
}

// Load merges defaults, the YAML file at path (skipped when empty),
// environment variables and overrides, in increasing priority, then
// validates the result. Zero-valued fields in a source do not override,
// so a field that must be switchable back to its zero value (Log.Dev) is a
// pointer and overrides whenever it is set.
func Load(path string, overrides *Config) (*Config, error) {
	return newBuilder().
		withDefaults().
		withFile(path).
		withEnv().
		with(overrides).
		build()
}
