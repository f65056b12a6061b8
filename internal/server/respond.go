package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"kanban-board/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps the error taxonomy to a status code and a structured
// message payload. Storage errors are logged but never echoed to the client.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
		message = err.Error()
	case apperr.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case apperr.KindConflict:
		status = http.StatusConflict
		message = err.Error()
	default:
		slog.Error("request failed", "error", err)
	}

	writeJSON(w, status, map[string]string{"error": message})
}

// parseID parses a canonical hyphenated UUID, returning a validation error
// for anything else.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid id %q", raw)
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid request body")
	}
	return nil
}
