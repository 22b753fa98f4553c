package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/anitrack/anitrack-go/internal/model"
	"github.com/anitrack/anitrack-go/internal/service"
)

// WatchlistHandler handles HTTP requests for watchlist entry operations.
type WatchlistHandler struct {
	service *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(svc *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{service: svc}
}

// HandleGetByUser handles GET /watchlist/{userId} requests.
func (h *WatchlistHandler) HandleGetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, kindValidation, "invalid user id")
		return
	}

	entries, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, kindInternal, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleCreateEntry handles POST /watchlist requests.
func (h *WatchlistHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.WatchlistEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, r, http.StatusRequestEntityTooLarge, kindValidation, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, kindValidation, "invalid request body")
		return
	}

	resp, err := h.service.CreateEntry(r.Context(), req)
	if err != nil {
		switch {
		case isWatchlistValidationError(err), errors.Is(err, service.ErrUnknownReference):
			writeError(w, r, http.StatusBadRequest, kindValidation, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, kindInternal, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdateEntry handles PUT /watchlist/{id} requests.
func (h *WatchlistHandler) HandleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, kindValidation, "invalid entry id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.WatchlistEntryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, r, http.StatusRequestEntityTooLarge, kindValidation, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, kindValidation, "invalid request body")
		return
	}

	resp, err := h.service.UpdateEntry(r.Context(), id, req)
	if err != nil {
		switch {
		case isWatchlistValidationError(err):
			writeError(w, r, http.StatusBadRequest, kindValidation, err.Error())
		case errors.Is(err, service.ErrEntryNotFound):
			writeError(w, r, http.StatusNotFound, kindNotFound, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, kindInternal, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteEntry handles DELETE /watchlist/{id} requests.
func (h *WatchlistHandler) HandleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, kindValidation, "invalid entry id")
		return
	}

	if err := h.service.DeleteEntry(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			writeError(w, r, http.StatusNotFound, kindNotFound, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, kindInternal, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isWatchlistValidationError(err error) bool {
	return errors.Is(err, service.ErrUserIDRequired) ||
		errors.Is(err, service.ErrAnimeRequired) ||
		errors.Is(err, service.ErrInvalidStatus) ||
		errors.Is(err, service.ErrNegativeEpisode) ||
		errors.Is(err, service.ErrNotesTooLong)
}
