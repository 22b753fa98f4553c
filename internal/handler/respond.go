package handler

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Error kinds used in the error envelope.
const (
	kindValidation = "validation"
	kindConflict   = "conflict"
	kindNotFound   = "not_found"
	kindUpstream   = "upstream"
	kindInternal   = "internal"
)

type errorBody struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the stable error envelope: kind, message and the
// correlating request id.
func writeError(w http.ResponseWriter, r *http.Request, status int, kind, msg string) {
	writeJSON(w, status, map[string]errorBody{"error": {
		Kind:      kind,
		Message:   msg,
		RequestID: chimw.GetReqID(r.Context()),
	}})
}
