package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/core/ports/driving"
	"github.com/woodenlobby/storefront/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService serves read queries over the active catalog.
// It holds no index: every query acquires, decodes, normalises and
// filters the source again.
type CatalogService struct {
	source  driven.Source
	decoder driven.CatalogDecoder
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(source driven.Source, decoder driven.CatalogDecoder) *CatalogService {
	return &CatalogService{
		source:  source,
		decoder: decoder,
	}
}

// Products returns all active products in source order.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.load(ctx)
}

// ProductBySlug returns the first active product carrying slug.
func (s *CatalogService) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ProductSlug == slug {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %q: %w", slug, domain.ErrNotFound)
}

// ProductsByCategory returns active products in category, in source order.
func (s *CatalogService) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return byCategory(products, category), nil
}

// Categories returns the distinct categories in first-seen order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return categoriesOf(products), nil
}

// CategoryIndex maps each non-empty category to its active products.
func (s *CatalogService) CategoryIndex(ctx context.Context) (map[string][]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return indexOf(products), nil
}

// Overview loads the catalog once and derives every grouping from it.
func (s *CatalogService) Overview(ctx context.Context, featuredLimit int) (*domain.CatalogOverview, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.CatalogOverview{
		Products:   products,
		Categories: categoriesOf(products),
		Index:      indexOf(products),
		Featured:   selectFeatured(products, featuredLimit),
	}, nil
}

// Featured returns up to limit products. Products with a featured badge
// come first in source order; the rest of the active catalog pads the
// result. A slug is never selected twice.
func (s *CatalogService) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return selectFeatured(products, limit), nil
}

// Search filters by category and name text, then orders by sort.
func (s *CatalogService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if query.Category != "" {
		products = byCategory(products, query.Category)
	}

	text := strings.ToLower(strings.TrimSpace(query.Text))
	if text != "" {
		matched := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.ProductName), text) {
				matched = append(matched, p)
			}
		}
		products = matched
	}

	sortByPrice(products, query.Sort)
	return products, nil
}

// load runs the full pipeline once.
func (s *CatalogService) load(ctx context.Context) ([]domain.Product, error) {
	logger.Section("Catalog Load")

	text, err := s.source.Fetch(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, s.source.Name(), err)
	}

	rows, err := s.decoder.DecodeCatalog(text)
	if err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %w", domain.ErrSourceUnavailable, err)
	}

	active := FilterActive(NormaliseRows(rows))
	logger.Debug("Catalog: %d rows, %d active", len(rows), len(active))
	warnSlugCollisions(active)
	warnEmptySlugs(active)

	return active, nil
}

func categoriesOf(products []domain.Product) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// indexOf groups products by category. Uncategorised products are left out,
// matching categoriesOf.
func indexOf(products []domain.Product) map[string][]domain.Product {
	index := make(map[string][]domain.Product)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		index[p.Category] = append(index[p.Category], p)
	}
	return index
}

func byCategory(products []domain.Product, category string) []domain.Product {
	matched := make([]domain.Product, 0)
	for _, p := range products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

func selectFeatured(products []domain.Product, limit int) []domain.Product {
	if limit <= 0 {
		return []domain.Product{}
	}

	selected := make([]domain.Product, 0, limit)
	taken := make(map[string]struct{})
	take := func(p domain.Product) {
		taken[p.ProductSlug] = struct{}{}
		selected = append(selected, p)
	}

	for _, p := range products {
		if len(selected) == limit {
			return selected
		}
		if _, ok := taken[p.ProductSlug]; ok {
			continue
		}
		if domain.IsFeaturedBadge(p.Badge) {
			take(p)
		}
	}
	for _, p := range products {
		if len(selected) == limit {
			break
		}
		if _, ok := taken[p.ProductSlug]; ok {
			continue
		}
		take(p)
	}
	return selected
}

// sortByPrice orders in place. Products without a price sort last in
// both directions; ties keep source order.
func sortByPrice(products []domain.Product, order domain.SortOrder) {
	if order != domain.SortPriceAsc && order != domain.SortPriceDesc {
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].PriceNumber, products[j].PriceNumber
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case order == domain.SortPriceDesc:
			return *a > *b
		default:
			return *a < *b
		}
	})
}

func warnSlugCollisions(products []domain.Product) {
	counts := make(map[string]int)
	for _, p := range products {
		if p.ProductSlug == "" {
			continue
		}
		counts[p.ProductSlug]++
	}
	for slug, n := range counts {
		if n > 1 {
			logger.Warn("Slug %q is shared by %d active products; only the first is reachable", slug, n)
		}
	}
}

// warnEmptySlugs reports names that slugify to nothing. Such products
// still list and search, but have no product page.
func warnEmptySlugs(products []domain.Product) {
	for _, p := range products {
		if p.ProductSlug == "" {
			logger.Warn("Product %q has an empty slug and no product page", p.ProductName)
		}
	}
}
