package driven

import "github.com/woodenlobby/storefront/internal/core/domain"

// ContentCache is a single-slot memo for the process-wide GenericContent.
// It has no expiry; only Clear empties it.
type ContentCache interface {
	// Load returns the cached value and whether one is present.
	Load() (domain.GenericContent, bool)

	// Store replaces the cached value.
	Store(content domain.GenericContent)

	// Clear empties the slot.
	Clear()
}
