package model

// Anime represents an anime title in the database. The ID is the AniList
// media id, not a locally generated one.
type Anime struct {
	ID         int64
	Title      string
	CoverImage string
	Episodes   int
	Status     string
}

// AnimeUpsert carries the anime metadata embedded in a watchlist create
// request, as returned by the search endpoint.
type AnimeUpsert struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	CoverImage string `json:"cover_image"`
	Episodes   int    `json:"episodes"`
	Status     string `json:"status"`
}
