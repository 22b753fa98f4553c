package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anitrack/anitrack-go/internal/model"
	"github.com/anitrack/anitrack-go/internal/service"
)

// AuthHandler handles HTTP requests for registration.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, r, http.StatusRequestEntityTooLarge, kindValidation, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, kindValidation, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			writeError(w, r, http.StatusBadRequest, kindValidation, err.Error())
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
			writeError(w, r, http.StatusConflict, kindConflict, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, kindInternal, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
