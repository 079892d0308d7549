// Package common defines shared constants and sentinel errors used across
// the server and the client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Signup conflict.
	ErrDuplicateEmail = errors.New("email already registered")

	// Input validation errors.
	ErrValidation     = errors.New("validation error")
	ErrInvalidID      = errors.New("invalid id format")
	ErrNotCSV         = errors.New("file must be a csv")
	ErrMalformedInput = errors.New("malformed input")

	// Archive lookups for runs stored without a file.
	ErrNoArchivedFile = errors.New("no archived file")
)

// DetailedError pairs a sentinel with the message shown to API callers.
// errors.Is matches the sentinel; Error returns the detail.
type DetailedError struct {
	Err    error
	Detail string
}

func (e *DetailedError) Error() string { return e.Detail }

func (e *DetailedError) Unwrap() error { return e.Err }

// WithDetail wraps a sentinel with a caller-facing message.
func WithDetail(err error, detail string) error {
	return &DetailedError{Err: err, Detail: detail}
}
