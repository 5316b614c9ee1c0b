package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a JSON request body. It writes a 400 response and returns
// false when the body is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// handleError maps domain errors to HTTP status codes.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidReference):
		writeError(w, http.StatusUnprocessableEntity, "conversation does not exist")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.ErrorContext(r.Context(), "database unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
	case errors.Is(err, domain.ErrProvider), errors.Is(err, domain.ErrEmptyResult):
		log.WarnContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "speech synthesis failed")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return "invalid request"
}
