// Package store keeps the per-project download ledger in SQLite. The
// ledger is how the CLI knows which waveform and station files already
// exist, so download commands only fetch what is missing.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lasif-tools/cli/internal/store/migrations"
)

// Store wraps a SQLite database connection for the download ledger.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the ledger at the given path and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with in-memory databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions tightens file permissions on the database file.
func setDBPermissions(path string) {
	if path == ":memory:" || path == "" {
		return
	}
	_ = os.Chmod(path, 0600)
}
