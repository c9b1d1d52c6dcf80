package usecase

import "errors"

// Shared usecase error taxonomy. Handlers map these to HTTP statuses:
// ErrDataAccess is retryable by the caller, the rest are not.
var (
	ErrDataAccess   = errors.New("data access error")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
)
