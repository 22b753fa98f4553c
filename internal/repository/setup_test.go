package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/anitrack/anitrack-go/internal/model"
)

// setupTestDB creates an in-memory sqlite database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := SyncSchema(context.Background(), db, "sqlite3"); err != nil {
		t.Fatalf("failed to sync schema: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *sql.DB, username, email string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fixedtesthashfixedtesthashfixedtesthashfixedtesthash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestAnime(t *testing.T, db *sql.DB, id int64, title string) *model.Anime {
	t.Helper()

	anime := &model.Anime{
		ID:         id,
		Title:      title,
		CoverImage: "https://img.example/" + title + ".png",
		Episodes:   12,
		Status:     "FINISHED",
	}
	if err := NewAnimeRepository(db, "sqlite3").Upsert(context.Background(), anime); err != nil {
		t.Fatalf("failed to create test anime: %v", err)
	}
	return anime
}
