// Package server provides the HTTP REST API for the Majel companion tool.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/admiralguff/majel/internal/crew"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrOfficerNotFound indicates an officer ID absent from the reference
// catalog.
type ErrOfficerNotFound struct {
	OfficerID string
}

func (e *ErrOfficerNotFound) Error() string {
	return fmt.Sprintf("officer not found: %s", e.OfficerID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr    *ErrValidation
		notFoundErr      *ErrOfficerNotFound
		unknownIntentErr *crew.UnknownIntentError
		pinnedErr        *crew.PinnedCaptainError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &unknownIntentErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.As(err, &pinnedErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
