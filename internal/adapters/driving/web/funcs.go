package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/normalisers/markdown"
)

const (
	brandName     = "Woodenlobby"
	priceCurrency = "INR"
	priceOnQuote  = "Please quote"
)

// templateFuncs returns the helpers available to every page template.
func templateFuncs(site domain.SiteIdentity, renderer *markdown.Renderer) template.FuncMap {
	return template.FuncMap{
		"markdown": func(source string) template.HTML {
			return renderer.MustRender(cellText(source))
		},
		"productURL":  productURL,
		"categoryURL": categoryURL,
		"enquiryURL": func(p domain.Product) string {
			return enquiryURL(site, p)
		},
		"whatsAppURL": func(text string) string {
			return whatsAppURL(site.WhatsApp, text)
		},
		"productJSONLD": func(p domain.Product) template.JS {
			return productJSONLD(site, p)
		},
	}
}

// cellEscapes undoes the escaping spreadsheets apply to multi-line cells.
var cellEscapes = strings.NewReplacer(`\n`, "\n", `\"`, `"`, `\r`, "")

func cellText(s string) string {
	return strings.TrimSpace(cellEscapes.Replace(s))
}

func productURL(slug string) string {
	return "/p/" + url.PathEscape(slug)
}

func categoryURL(category string) string {
	return "/c/" + url.PathEscape(category)
}

// whatsAppURL builds a wa.me chat link with a prefilled message.
// Spaces are encoded as %20 rather than '+'.
func whatsAppURL(number, text string) string {
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// enquiryURL builds the order enquiry link shown on a product page.
func enquiryURL(site domain.SiteIdentity, p domain.Product) string {
	price := p.PriceDisplay
	if price == "" {
		price = priceOnQuote
	}
	origin := strings.TrimRight(site.BaseURL, "/")
	msg := fmt.Sprintf("Hi! I would like to order:\n\n📦 *%s*\n💰 Price: %s\n🔗 Product: %s%s\n\n"+
		"Please provide delivery details and confirm the order. Thank you!",
		p.ProductName, price, origin, productURL(p.ProductSlug))
	return whatsAppURL(site.WhatsApp, msg)
}

type jsonLDOffer struct {
	Type          string  `json:"@type"`
	PriceCurrency string  `json:"priceCurrency"`
	Price         float64 `json:"price"`
	Availability  string  `json:"availability"`
}

type jsonLDProduct struct {
	Context     string            `json:"@context"`
	Type        string            `json:"@type"`
	Name        string            `json:"name"`
	Image       []string          `json:"image,omitempty"`
	Description string            `json:"description,omitempty"`
	Brand       map[string]string `json:"brand"`
	Category    string            `json:"category,omitempty"`
	URL         string            `json:"url"`
	Offers      *jsonLDOffer      `json:"offers,omitempty"`
}

// productJSONLD renders schema.org Product markup for a product page.
// Offers are omitted when the price could not be derived.
func productJSONLD(site domain.SiteIdentity, p domain.Product) template.JS {
	doc := jsonLDProduct{
		Context:     "https://schema.org",
		Type:        "Product",
		Name:        p.ProductName,
		Image:       p.Images,
		Description: p.ShortDesc,
		Brand:       map[string]string{"@type": "Brand", "name": brandName},
		Category:    p.Category,
		URL:         strings.TrimRight(site.BaseURL, "/") + productURL(p.ProductSlug),
	}
	if p.PriceNumber != nil {
		doc.Offers = &jsonLDOffer{
			Type:          "Offer",
			PriceCurrency: priceCurrency,
			Price:         *p.PriceNumber,
			Availability:  "https://schema.org/InStock",
		}
	}

	// json.Marshal escapes <, > and & so the output is safe inside a script tag.
	data, err := json.Marshal(doc)
	if err != nil {
		return template.JS("{}")
	}
	return template.JS(data) //nolint:gosec // G203: marshalled JSON, HTML-escaped
}
