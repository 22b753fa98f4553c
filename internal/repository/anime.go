package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anitrack/anitrack-go/internal/model"
)

var ErrAnimeNotFound = errors.New("anime not found")

const (
	animeUpsertMySQL = `
	INSERT INTO anime (id, title, cover_image, episodes, status)
	VALUES (?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		title = VALUES(title),
		cover_image = VALUES(cover_image),
		episodes = VALUES(episodes),
		status = VALUES(status)`

	animeUpsertSQLite = `
	INSERT INTO anime (id, title, cover_image, episodes, status)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		cover_image = excluded.cover_image,
		episodes = excluded.episodes,
		status = excluded.status`
)

// AnimeRepository handles anime persistence operations. Anime rows carry the
// AniList id, so writes are upserts keyed on that id.
type AnimeRepository struct {
	db          *sql.DB
	upsertQuery string
}

// NewAnimeRepository creates a new AnimeRepository for the given driver.
func NewAnimeRepository(db *sql.DB, driver string) *AnimeRepository {
	q := animeUpsertMySQL
	if driver == "sqlite3" {
		q = animeUpsertSQLite
	}
	return &AnimeRepository{db: db, upsertQuery: q}
}

// Upsert inserts an anime row or refreshes its metadata if it already exists.
func (r *AnimeRepository) Upsert(ctx context.Context, anime *model.Anime) error {
	_, err := r.db.ExecContext(ctx, r.upsertQuery,
		anime.ID, anime.Title, anime.CoverImage, anime.Episodes, anime.Status,
	)
	return err
}

// UpsertTx is Upsert within the provided transaction.
func (r *AnimeRepository) UpsertTx(ctx context.Context, tx *sql.Tx, anime *model.Anime) error {
	_, err := tx.ExecContext(ctx, r.upsertQuery,
		anime.ID, anime.Title, anime.CoverImage, anime.Episodes, anime.Status,
	)
	return err
}

// GetByID retrieves an anime by its AniList id.
func (r *AnimeRepository) GetByID(ctx context.Context, id int64) (*model.Anime, error) {
	query := `SELECT id, title, cover_image, episodes, status FROM anime WHERE id = ?`

	anime := &model.Anime{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&anime.ID, &anime.Title, &anime.CoverImage, &anime.Episodes, &anime.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	return anime, nil
}
