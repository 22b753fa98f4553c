package handler

import (
	"net/http"

	"github.com/anitrack/anitrack-go/internal/anilist"
)

// AnimeHandler handles HTTP requests for anime metadata searches.
type AnimeHandler struct {
	client *anilist.Client
}

// NewAnimeHandler creates a new AnimeHandler.
func NewAnimeHandler(client *anilist.Client) *AnimeHandler {
	return &AnimeHandler{client: client}
}

// HandleSearch handles GET /anime/search?q= requests. The AniList response
// body is relayed verbatim.
func (h *AnimeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, r, http.StatusBadRequest, kindValidation, "query parameter q is required")
		return
	}

	body, err := h.client.SearchAnime(r.Context(), q)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, kindUpstream, "anime metadata lookup failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
