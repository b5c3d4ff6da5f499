package services

import (
	"strconv"
	"strings"

	"github.com/woodenlobby/storefront/internal/core/domain"
)

// NormaliseRow maps one untyped row to a Product.
// Every field is trimmed; missing values default rather than fail.
func NormaliseRow(row domain.RawProductRow) domain.Product {
	name := strings.TrimSpace(row.ProductName)
	price := strings.TrimSpace(row.PriceDisplay)

	slug := strings.TrimSpace(row.ProductSlug)
	if slug == "" {
		slug = Slugify(name)
	}

	images := make([]string, 0, 3)
	for _, u := range []string{row.Image1URL, row.Image2URL, row.Image3URL} {
		if u = strings.TrimSpace(u); u != "" {
			images = append(images, u)
		}
	}

	return domain.Product{
		Category:              strings.TrimSpace(row.Category),
		ProductName:           name,
		PriceDisplay:          price,
		MRP:                   strings.TrimSpace(row.MRP),
		Badge:                 strings.TrimSpace(row.Badge),
		ShortDesc:             strings.TrimSpace(row.ShortDesc),
		Images:                images,
		ProductSlug:           slug,
		Status:                domain.ParseStatus(strings.TrimSpace(row.Status)),
		OverviewContent:       strings.TrimSpace(row.OverviewContent),
		SpecificationsContent: strings.TrimSpace(row.SpecificationsContent),
		PriceNumber:           ParsePrice(price),
	}
}

// NormaliseRows maps rows in order. No row is dropped.
func NormaliseRows(rows []domain.RawProductRow) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, NormaliseRow(row))
	}
	return products
}

// FilterActive returns the Active products, preserving order.
func FilterActive(products []domain.Product) []domain.Product {
	active := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// ParsePrice extracts a number from a display price such as "₹12,499.50".
// Everything except ASCII digits and '.' is discarded. Returns nil when
// nothing numeric remains.
func ParsePrice(display string) *float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return &v
}
