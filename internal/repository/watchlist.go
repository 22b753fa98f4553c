package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anitrack/anitrack-go/internal/model"
)

var (
	ErrEntryNotFound = errors.New("watchlist entry not found")
	ErrMissingRef    = errors.New("referenced user or anime does not exist")
)

const watchlistColumns = `id, user_id, anime_id, status, current_episode, rating, notes, created_at, updated_at`

const watchlistInsert = `
	INSERT INTO watchlist (user_id, anime_id, status, current_episode, rating, notes)
	VALUES (?, ?, ?, ?, ?, ?)`

// WatchlistRepository handles watchlist entry persistence operations.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// BeginTx starts a new database transaction.
func (r *WatchlistRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// Create inserts a new watchlist entry and sets the generated ID on the entry.
func (r *WatchlistRepository) Create(ctx context.Context, entry *model.WatchlistEntry) error {
	result, err := r.db.ExecContext(ctx, watchlistInsert,
		entry.UserID, entry.AnimeID, entry.Status, entry.CurrentEpisode, entry.Rating, entry.Notes,
	)
	return r.finishInsert(entry, result, err)
}

// CreateTx is Create within the provided transaction.
func (r *WatchlistRepository) CreateTx(ctx context.Context, tx *sql.Tx, entry *model.WatchlistEntry) error {
	result, err := tx.ExecContext(ctx, watchlistInsert,
		entry.UserID, entry.AnimeID, entry.Status, entry.CurrentEpisode, entry.Rating, entry.Notes,
	)
	return r.finishInsert(entry, result, err)
}

func (r *WatchlistRepository) finishInsert(entry *model.WatchlistEntry, result sql.Result, err error) error {
	if err != nil {
		if isForeignKeyError(err) {
			return ErrMissingRef
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetByID retrieves a watchlist entry by its ID.
func (r *WatchlistRepository) GetByID(ctx context.Context, id int64) (*model.WatchlistEntry, error) {
	query := `SELECT ` + watchlistColumns + ` FROM watchlist WHERE id = ?`

	entry := &model.WatchlistEntry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID, &entry.UserID, &entry.AnimeID, &entry.Status,
		&entry.CurrentEpisode, &entry.Rating, &entry.Notes,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// ListByUser retrieves all watchlist entries for a user. An unknown user id
// yields an empty result, not an error.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.WatchlistEntry, error) {
	query := `SELECT ` + watchlistColumns + ` FROM watchlist WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.WatchlistEntry
	for rows.Next() {
		var e model.WatchlistEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.AnimeID, &e.Status,
			&e.CurrentEpisode, &e.Rating, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Update rewrites the mutable fields of an existing entry. Callers are
// expected to have loaded the entry first; MySQL reports zero affected rows
// for no-op updates, so row counts cannot signal existence here.
func (r *WatchlistRepository) Update(ctx context.Context, entry *model.WatchlistEntry) error {
	query := `UPDATE watchlist
		SET status = ?, current_episode = ?, rating = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		entry.Status, entry.CurrentEpisode, entry.Rating, entry.Notes, entry.ID,
	)
	return err
}

// Delete removes a watchlist entry.
func (r *WatchlistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM watchlist WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
