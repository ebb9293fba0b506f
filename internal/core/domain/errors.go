package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCurrentDocument indicates the session has not resolved a
	// current document yet.
	ErrNoCurrentDocument = errors.New("no current document")

	// ErrStorageUnavailable indicates both storage tiers failed.
	// Surfaced as a non-fatal notification; in-memory state is kept.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEmptyPalette indicates activation was attempted on an empty
	// command palette list.
	ErrEmptyPalette = errors.New("nothing to activate")
)
