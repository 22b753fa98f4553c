package model

import "time"

// WatchStatus describes a user's current relationship to a title.
type WatchStatus string

const (
	StatusWatching    WatchStatus = "watching"
	StatusCompleted   WatchStatus = "completed"
	StatusOnHold      WatchStatus = "on-hold"
	StatusDropped     WatchStatus = "dropped"
	StatusPlanToWatch WatchStatus = "plan-to-watch"
)

// Valid reports whether s is one of the closed set of watch statuses.
func (s WatchStatus) Valid() bool {
	switch s {
	case StatusWatching, StatusCompleted, StatusOnHold, StatusDropped, StatusPlanToWatch:
		return true
	}
	return false
}

// WatchlistEntry represents a user's tracked relationship to one anime.
type WatchlistEntry struct {
	ID             int64
	UserID         int64
	AnimeID        int64
	Status         WatchStatus
	CurrentEpisode int
	Rating         int
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WatchlistEntryRequest represents a watchlist entry create request. The
// referenced anime metadata is embedded so the row can be upserted before
// the entry is inserted.
type WatchlistEntryRequest struct {
	UserID         int64       `json:"user_id"`
	Anime          AnimeUpsert `json:"anime"`
	Status         WatchStatus `json:"status"`
	CurrentEpisode int         `json:"current_episode"`
	Rating         int         `json:"rating"`
	Notes          string      `json:"notes"`
}

// WatchlistEntryUpdateRequest represents an update to an existing entry.
type WatchlistEntryUpdateRequest struct {
	Status         WatchStatus `json:"status"`
	CurrentEpisode int         `json:"current_episode"`
	Rating         int         `json:"rating"`
	Notes          string      `json:"notes"`
}

// WatchlistEntryResponse represents a watchlist entry in API responses.
type WatchlistEntryResponse struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"user_id"`
	AnimeID        int64       `json:"anime_id"`
	Status         WatchStatus `json:"status"`
	CurrentEpisode int         `json:"current_episode"`
	Rating         int         `json:"rating"`
	Notes          string      `json:"notes"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
