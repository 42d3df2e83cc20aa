package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"draftdeck/internal/domain"
	"draftdeck/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
// Generation failures surface as 502 with the upstream detail stripped;
// anything unrecognized is a plain 500.
func handleError(w http.ResponseWriter, err error) {
	var genErr *domain.GenerationError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrPrecondition):
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &genErr):
		// The wrapped provider error can carry API detail; only the
		// message goes to the client.
		httputil.RespondError(w, http.StatusBadGateway, genErr.Message)
	case errors.Is(err, domain.ErrExport):
		httputil.RespondError(w, http.StatusInternalServerError, "failed to export document")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID extracts and validates a UUID path parameter
func pathID(r *http.Request, name string) (string, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%s must be a valid UUID", name)
	}
	return raw, nil
}
