// Package testutil provides shared test helpers.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/lasif-tools/cli/internal/store"
	"github.com/lasif-tools/cli/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore creates a ledger Store backed by an in-memory database.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedRecords inserts ledger rows into a test store.
func SeedRecords(t *testing.T, s *store.Store, records []store.Record) {
	t.Helper()

	for _, r := range records {
		require.NoError(t, s.Insert(r), "failed to seed record: %+v", r)
	}
}
