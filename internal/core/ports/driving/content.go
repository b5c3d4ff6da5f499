package driving

import (
	"context"

	"github.com/woodenlobby/storefront/internal/core/domain"
)

// ContentService serves the site-wide generic content.
type ContentService interface {
	// Get returns the memoised content, fetching it on first use.
	// Never fails: when every source fails it returns an empty record.
	Get(ctx context.Context) domain.GenericContent

	// Reset clears the memo so the next Get fetches again.
	Reset()
}
