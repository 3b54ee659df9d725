package handlers

import (
	"errors"
	"net/http"

	"eyewear-ai-proxy/internal/services"
)

// StatusForError maps a pipeline error to the HTTP status returned to the client
func StatusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrClientInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRouting):
		return http.StatusMethodNotAllowed
	case errors.Is(err, services.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrConfiguration),
		errors.Is(err, services.ErrContractViolation):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
