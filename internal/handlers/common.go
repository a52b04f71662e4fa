package handlers

import (
	"errors"
	"net/http"

	"github.com/chizhinime/brand-pawa-sub000/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// statusForError maps the service sentinels onto HTTP statuses. Anything
// unrecognized is a persistence failure and surfaces as a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyEnrolled),
		errors.Is(err, services.ErrAlreadyCompleted),
		errors.Is(err, services.ErrEnrollmentNotActive):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidResponse),
		errors.Is(err, services.ErrInvalidBrandType):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotEntitled):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
