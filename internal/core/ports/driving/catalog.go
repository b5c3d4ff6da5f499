package driving

import (
	"context"

	"github.com/woodenlobby/storefront/internal/core/domain"
)

// CatalogService is the only catalog surface the rendering layer may depend on.
// Every call re-acquires and re-derives the active catalog.
type CatalogService interface {
	// Products returns all active products in source order.
	// Returns an error wrapping domain.ErrSourceUnavailable when no source could be read.
	Products(ctx context.Context) ([]domain.Product, error)

	// ProductBySlug returns the first active product with the slug.
	// Returns domain.ErrNotFound if none matches.
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// ProductsByCategory returns active products whose category equals category exactly.
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)

	// Categories returns distinct categories in first-seen order.
	Categories(ctx context.Context) ([]string, error)

	// CategoryIndex maps each category to its active products.
	CategoryIndex(ctx context.Context) (map[string][]domain.Product, error)

	// Featured returns at most limit products: featured badges first, then padding.
	Featured(ctx context.Context, limit int) ([]domain.Product, error)

	// Overview derives the categories, index and featured set from a single load.
	Overview(ctx context.Context, featuredLimit int) (*domain.CatalogOverview, error)

	// Search filters and orders the active catalog.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.Product, error)
}
