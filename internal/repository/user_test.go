package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anitrack/anitrack-go/internal/model"
)

func TestUserCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{
		Username:     "misato",
		Email:        "misato@example.com",
		PasswordHash: "$2a$10$somehash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Create() did not set user ID")
	}

	byEmail, err := repo.GetByEmail(ctx, "misato@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.Username != "misato" {
		t.Errorf("GetByEmail() = %+v, want id %d username misato", byEmail, user.ID)
	}

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if byID.Email != "misato@example.com" {
		t.Errorf("GetByID() email = %q, want misato@example.com", byID.Email)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "first", "taken@example.com")

	dup := &model.User{
		Username:     "second",
		Email:        "taken@example.com",
		PasswordHash: "$2a$10$somehash",
		CreatedAt:    time.Now().UTC(),
	}
	err := repo.Create(ctx, dup)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("Create() error = %v, want ErrDuplicateEmail", err)
	}

	// Exactly one row should exist for that email.
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, "taken@example.com").Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("user table has %d rows for duplicate email, want 1", count)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "shinji", "shinji@example.com")

	dup := &model.User{
		Username:     "shinji",
		Email:        "other@example.com",
		PasswordHash: "$2a$10$somehash",
		CreatedAt:    time.Now().UTC(),
	}
	err := repo.Create(context.Background(), dup)
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("Create() error = %v, want ErrDuplicateUsername", err)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("GetByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("UNIQUE constraint failed: users.email")) {
		t.Error("sqlite unique violation should be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("Error 1062: Duplicate entry 'x' for key 'users.email'")) {
		t.Error("mysql unique violation should be a duplicate entry error")
	}
}
