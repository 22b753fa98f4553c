package repository

import (
	"context"
	"database/sql"
	"fmt"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(64) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY username (username),
		UNIQUE KEY email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS anime (
		id BIGINT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		cover_image VARCHAR(512) NOT NULL DEFAULT '',
		episodes INT NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS watchlist (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		anime_id BIGINT NOT NULL,
		status VARCHAR(16) NOT NULL,
		current_episode INT NOT NULL DEFAULT 0,
		rating INT NOT NULL DEFAULT 0,
		notes VARCHAR(1000) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (anime_id) REFERENCES anime(id)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS anime (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		cover_image TEXT NOT NULL DEFAULT '',
		episodes INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS watchlist (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		anime_id INTEGER NOT NULL,
		status TEXT NOT NULL,
		current_episode INTEGER NOT NULL DEFAULT 0,
		rating INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (anime_id) REFERENCES anime(id)
	)`,
}

// SyncSchema creates any missing tables for the given driver. Statements are
// idempotent, so running this on every startup is safe.
func SyncSchema(ctx context.Context, db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case "mysql":
		stmts = mysqlSchema
	case "sqlite3":
		stmts = sqliteSchema
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("syncing schema: %w", err)
		}
	}
	return nil
}
