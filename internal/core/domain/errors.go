package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// Channel manager token errors.
// The token lifecycle has no refresh flow: an expired or rejected token
// always requires the operator to save a fresh one in settings.
var (
	ErrTokenNotConfigured = errors.New("channel manager token not configured")
	ErrTokenExpired       = errors.New("channel manager token expired")
	ErrStoreUnavailable   = errors.New("token store unavailable")
	ErrAuthRejected       = errors.New("channel manager rejected the token")
)

// APIError represents a non-auth failure returned by the channel manager API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("channel manager error (%d): %s", e.Status, e.Message)
}
