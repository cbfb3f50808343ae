package catalog

import "errors"

var (
	// ErrInvalidInput marks a rejected year or status; nothing was changed or saved.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an id that matches no book; nothing was changed or saved.
	ErrNotFound = errors.New("book not found")
	// ErrIOFailure marks a failed save. The in-memory catalog keeps the change.
	ErrIOFailure = errors.New("failed to save catalog")
)
