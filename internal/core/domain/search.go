package domain

import "strings"

// SortOrder orders a product listing.
type SortOrder string

const (
	// SortDefault keeps source order.
	SortDefault SortOrder = "default"

	// SortPriceAsc orders by derived price, low to high.
	SortPriceAsc SortOrder = "price_asc"

	// SortPriceDesc orders by derived price, high to low.
	SortPriceDesc SortOrder = "price_desc"
)

// ParseSortOrder maps a query value to a SortOrder.
// Unknown values fall back to SortDefault.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc, "asc":
		return SortPriceAsc
	case SortPriceDesc, "desc":
		return SortPriceDesc
	default:
		return SortDefault
	}
}

// SearchQuery filters and orders the active catalog.
type SearchQuery struct {
	// Category restricts results to an exact category. Empty means all.
	Category string

	// Text is matched case-insensitively against the product name.
	Text string

	// Sort orders the results. Products without a price sort last.
	Sort SortOrder
}
