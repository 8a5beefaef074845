package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidServerConfig indicates a missing address or non-positive timeout.
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	// ErrInvalidStorageConfig indicates a missing database path.
	ErrInvalidStorageConfig = errors.New("invalid storage configuration")
)

// Validate checks the merged configuration before startup.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfig)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfig)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: empty db path", ErrInvalidStorageConfig)
	}
	return nil
}
