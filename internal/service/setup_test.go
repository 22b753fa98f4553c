package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/anitrack/anitrack-go/internal/repository"
)

// newTestDB creates an in-memory sqlite database with the schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := repository.NewDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repository.SyncSchema(context.Background(), db, "sqlite3"); err != nil {
		t.Fatalf("failed to sync schema: %v", err)
	}

	return db
}
