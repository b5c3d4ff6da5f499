package memory

import (
	"sync"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
)

// Ensure ContentCache implements the interface.
var _ driven.ContentCache = (*ContentCache)(nil)

// ContentCache is a single-slot, process-lifetime store for GenericContent.
// The zero value is an empty cache ready for use.
type ContentCache struct {
	mu      sync.RWMutex
	content domain.GenericContent
	filled  bool
}

// NewContentCache creates an empty content cache.
func NewContentCache() *ContentCache {
	return &ContentCache{}
}

// Load returns the cached content and whether the slot is filled.
func (c *ContentCache) Load() (domain.GenericContent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.content, c.filled
}

// Store fills the slot, replacing any previous value.
func (c *ContentCache) Store(content domain.GenericContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = content
	c.filled = true
}

// Clear empties the slot.
func (c *ContentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = domain.GenericContent{}
	c.filled = false
}
