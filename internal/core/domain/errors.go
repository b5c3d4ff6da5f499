package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates every configured source for a table failed.
	// For the product catalog this is a hard failure surfaced to callers.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSourceNotConfigured indicates an optional source has no location set.
	ErrSourceNotConfigured = errors.New("source not configured")

	// ErrUnsupportedStrategy indicates an unknown acquisition strategy.
	ErrUnsupportedStrategy = errors.New("unsupported acquisition strategy")
)
