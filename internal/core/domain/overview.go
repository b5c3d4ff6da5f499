package domain

// CatalogOverview is a view of one catalog load, for pages that need
// several groupings of the same snapshot.
type CatalogOverview struct {
	// Products is the active catalog in source order.
	Products []Product

	// Categories lists distinct non-empty categories in first-seen order.
	Categories []string

	// Index maps each category in Categories to its products.
	Index map[string][]Product

	// Featured is the featured selection for the requested limit.
	Featured []Product
}
