// Package db opens the SQLite store and keeps its schema current.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// connParams are applied by the driver to every pooled connection.
var connParams = url.Values{
	"_journal_mode": {"WAL"},
	"_foreign_keys": {"on"},
	"_cslike":       {"on"},
	"_busy_timeout": {"5000"},
}

// DefaultPath returns the default database path: ~/.client-tracker/clients.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".client-tracker", "clients.db"), nil
}

// DSN returns the go-sqlite3 data source name for the database at path.
func DSN(path string) string {
	return path + "?" + connParams.Encode()
}

// Open opens (or creates) the database at path and applies pending
// migrations. Every connection runs in WAL mode with foreign keys on
// and a case-sensitive LIKE.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return nil, closeOnError(db, fmt.Errorf("connecting to %s: %w", path, err))
	}

	if err := Migrate(ctx, db); err != nil {
		return nil, closeOnError(db, err)
	}

	return db, nil
}

func closeOnError(db *sql.DB, err error) error {
	if cerr := db.Close(); cerr != nil {
		return fmt.Errorf("%w (also failed to close: %v)", err, cerr)
	}
	return err
}
