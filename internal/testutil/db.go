// internal/testutil/db.go

// Package testutil provides a throwaway migrated database and common
// fixtures for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/tvidela/clubcancha/internal/db"
)

// NewTestDB opens a fresh SQLite database in a temp dir with all
// migrations applied. The database is closed when the test ends.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
