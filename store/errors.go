package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four failure kinds callers can act on.
// Services wrap these with fmt.Errorf("...: %w", ...) so the HTTP layer
// can branch on errors.Is while the message keeps the detail.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")

	// ErrCapacityViolation is a Conflict: errors.Is(err, ErrConflict)
	// holds for every capacity violation.
	ErrCapacityViolation = fmt.Errorf("%w: capacity below occupancy", ErrConflict)
)

// ErrorKind returns the stable machine-readable kind for err, or "" when
// the error is none of ours.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrCapacityViolation):
		return "CAPACITY_VIOLATION"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	}
	return ""
}
