package domain

// Status is the catalog visibility of a product row.
type Status string

const (
	// StatusActive marks a product as publicly visible.
	StatusActive Status = "Active"

	// StatusHidden marks a product as not visible.
	// Every source value other than exactly "Active" maps here.
	StatusHidden Status = "Hidden"
)

// ParseStatus maps a raw status cell to a Status.
// The match is exact and case-sensitive; "active" is Hidden.
func ParseStatus(s string) Status {
	if s == string(StatusActive) {
		return StatusActive
	}
	return StatusHidden
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// FeaturedBadges are the badges that qualify a product for the featured set.
var FeaturedBadges = []string{"New", "Sale", "Bestseller"}

// IsFeaturedBadge reports whether badge is in the featured allow-list.
func IsFeaturedBadge(badge string) bool {
	for _, b := range FeaturedBadges {
		if b == badge {
			return true
		}
	}
	return false
}

// Product is one catalog entry.
// Optional text fields use the empty string for "unset".
type Product struct {
	// Category is the free-text grouping label (e.g. "Beds").
	Category string `json:"category"`

	// ProductName is the display name.
	ProductName string `json:"product_name"`

	// PriceDisplay is the price as written in the sheet, currency symbols included.
	PriceDisplay string `json:"price_display"`

	// MRP is the optional original price shown struck through.
	MRP string `json:"mrp_optional,omitempty"`

	// Badge is an optional label such as "New" or "Sale".
	Badge string `json:"badge,omitempty"`

	// ShortDesc is an optional one-line summary.
	ShortDesc string `json:"short_desc,omitempty"`

	// Images holds zero to three image URLs in column order.
	Images []string `json:"images"`

	// ProductSlug is the URL path segment identifying the product.
	// Not guaranteed unique across rows; lookups return the first match.
	ProductSlug string `json:"product_slug"`

	// Status is the visibility of the row.
	Status Status `json:"status"`

	// OverviewContent is optional long-form markdown.
	OverviewContent string `json:"overview_content,omitempty"`

	// SpecificationsContent is optional long-form markdown.
	SpecificationsContent string `json:"specifications_content,omitempty"`

	// PriceNumber is derived from PriceDisplay. Nil when it cannot be parsed.
	PriceNumber *float64 `json:"priceNumber"`
}

// IsActive reports whether the product is publicly visible.
func (p Product) IsActive() bool {
	return p.Status == StatusActive
}

// PrimaryImage returns the first image URL or "".
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// RawProductRow is one catalog spreadsheet row before normalisation.
// Missing columns decode as empty strings.
type RawProductRow struct {
	Category              string `csv:"category"`
	ProductName           string `csv:"product_name"`
	PriceDisplay          string `csv:"price_display"`
	MRP                   string `csv:"mrp_optional"`
	Badge                 string `csv:"badge"`
	ShortDesc             string `csv:"short_desc"`
	Image1URL             string `csv:"image_1_url"`
	Image2URL             string `csv:"image_2_url"`
	Image3URL             string `csv:"image_3_url"`
	ProductSlug           string `csv:"product_slug"`
	Status                string `csv:"status"`
	SpecificationsContent string `csv:"specifications_content"`
	OverviewContent       string `csv:"overview_content"`
}
