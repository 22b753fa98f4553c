package service

import (
	"context"
	"errors"

	"github.com/anitrack/anitrack-go/internal/model"
	"github.com/anitrack/anitrack-go/internal/repository"
)

const maxNotesLength = 1000

var (
	ErrUserIDRequired   = errors.New("user_id is required")
	ErrAnimeRequired    = errors.New("anime id and title are required")
	ErrInvalidStatus    = errors.New("invalid watch status")
	ErrNegativeEpisode  = errors.New("current_episode must not be negative")
	ErrNotesTooLong     = errors.New("notes exceed maximum length")
	ErrEntryNotFound    = errors.New("watchlist entry not found")
	ErrUnknownReference = errors.New("referenced user does not exist")
)

// WatchlistService handles watchlist entry business logic.
type WatchlistService struct {
	entries *repository.WatchlistRepository
	anime   *repository.AnimeRepository
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(entries *repository.WatchlistRepository, anime *repository.AnimeRepository) *WatchlistService {
	return &WatchlistService{entries: entries, anime: anime}
}

// GetByUser returns all watchlist entries for a user. An unknown user id
// yields an empty list, never an error.
func (s *WatchlistService) GetByUser(ctx context.Context, userID int64) ([]model.WatchlistEntryResponse, error) {
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entriesToResponse(entries), nil
}

// CreateEntry adds an anime to a user's watchlist. The embedded anime
// metadata is upserted and the entry inserted in a single transaction, so an
// entry can never reference a missing anime row.
func (s *WatchlistService) CreateEntry(ctx context.Context, req model.WatchlistEntryRequest) (model.WatchlistEntryResponse, error) {
	if req.UserID <= 0 {
		return model.WatchlistEntryResponse{}, ErrUserIDRequired
	}
	if req.Anime.ID <= 0 || req.Anime.Title == "" {
		return model.WatchlistEntryResponse{}, ErrAnimeRequired
	}
	if err := validateFields(req.Status, req.CurrentEpisode, req.Notes); err != nil {
		return model.WatchlistEntryResponse{}, err
	}

	tx, err := s.entries.BeginTx(ctx)
	if err != nil {
		return model.WatchlistEntryResponse{}, err
	}
	defer tx.Rollback()

	anime := &model.Anime{
		ID:         req.Anime.ID,
		Title:      req.Anime.Title,
		CoverImage: req.Anime.CoverImage,
		Episodes:   req.Anime.Episodes,
		Status:     req.Anime.Status,
	}
	if err := s.anime.UpsertTx(ctx, tx, anime); err != nil {
		return model.WatchlistEntryResponse{}, err
	}

	entry := &model.WatchlistEntry{
		UserID:         req.UserID,
		AnimeID:        req.Anime.ID,
		Status:         req.Status,
		CurrentEpisode: req.CurrentEpisode,
		Rating:         req.Rating,
		Notes:          req.Notes,
	}
	if err := s.entries.CreateTx(ctx, tx, entry); err != nil {
		if errors.Is(err, repository.ErrMissingRef) {
			return model.WatchlistEntryResponse{}, ErrUnknownReference
		}
		return model.WatchlistEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.WatchlistEntryResponse{}, err
	}

	created, err := s.entries.GetByID(ctx, entry.ID)
	if err != nil {
		return model.WatchlistEntryResponse{}, err
	}
	return entryToResponse(*created), nil
}

// UpdateEntry rewrites the status, progress, rating and notes of an entry.
func (s *WatchlistService) UpdateEntry(ctx context.Context, id int64, req model.WatchlistEntryUpdateRequest) (model.WatchlistEntryResponse, error) {
	if err := validateFields(req.Status, req.CurrentEpisode, req.Notes); err != nil {
		return model.WatchlistEntryResponse{}, err
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return model.WatchlistEntryResponse{}, ErrEntryNotFound
		}
		return model.WatchlistEntryResponse{}, err
	}

	entry.Status = req.Status
	entry.CurrentEpisode = req.CurrentEpisode
	entry.Rating = req.Rating
	entry.Notes = req.Notes

	if err := s.entries.Update(ctx, entry); err != nil {
		return model.WatchlistEntryResponse{}, err
	}

	updated, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return model.WatchlistEntryResponse{}, err
	}
	return entryToResponse(*updated), nil
}

// DeleteEntry removes a watchlist entry.
func (s *WatchlistService) DeleteEntry(ctx context.Context, id int64) error {
	err := s.entries.Delete(ctx, id)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}

func validateFields(status model.WatchStatus, currentEpisode int, notes string) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if currentEpisode < 0 {
		return ErrNegativeEpisode
	}
	if len(notes) > maxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

func entryToResponse(e model.WatchlistEntry) model.WatchlistEntryResponse {
	return model.WatchlistEntryResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		AnimeID:        e.AnimeID,
		Status:         e.Status,
		CurrentEpisode: e.CurrentEpisode,
		Rating:         e.Rating,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// entriesToResponse converts a slice of WatchlistEntry to response form.
// The result is never nil so empty lists encode as [].
func entriesToResponse(entries []model.WatchlistEntry) []model.WatchlistEntryResponse {
	result := make([]model.WatchlistEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = entryToResponse(e)
	}
	return result
}
