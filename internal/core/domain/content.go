package domain

// GenericContent holds the site-wide markdown blocks shown on every product page.
// At most one exists per process. Any field may be unset ("").
type GenericContent struct {
	MerchantDetails      string `json:"merchant_details,omitempty"`
	CareInstructions     string `json:"care_instructions,omitempty"`
	DeliveryInstallation string `json:"delivery_installation,omitempty"`
	WarrantyInfo         string `json:"warranty_info,omitempty"`
	TermsConditions      string `json:"terms_conditions,omitempty"`
	FAQs                 string `json:"faqs,omitempty"`
	Disclaimer           string `json:"disclaimer,omitempty"`
}

// Set assigns value to the field named by a generic content header.
// Returns false for unknown headers.
func (c *GenericContent) Set(header, value string) bool {
	switch header {
	case "merchant_details":
		c.MerchantDetails = value
	case "care_instructions":
		c.CareInstructions = value
	case "delivery_installation":
		c.DeliveryInstallation = value
	case "warranty_info":
		c.WarrantyInfo = value
	case "terms_conditions":
		c.TermsConditions = value
	case "faqs":
		c.FAQs = value
	case "disclaimer":
		c.Disclaimer = value
	default:
		return false
	}
	return true
}

// IsEmpty reports whether no field is set.
func (c GenericContent) IsEmpty() bool {
	return c == GenericContent{}
}

// Section is a titled content block, used for ordered rendering.
type Section struct {
	Title string
	Body  string
}

// Sections returns the set fields as titled sections in display order.
func (c GenericContent) Sections() []Section {
	all := []Section{
		{Title: "Care Instructions", Body: c.CareInstructions},
		{Title: "Delivery & Installation", Body: c.DeliveryInstallation},
		{Title: "Warranty", Body: c.WarrantyInfo},
		{Title: "Terms & Conditions", Body: c.TermsConditions},
		{Title: "FAQs", Body: c.FAQs},
		{Title: "Merchant Details", Body: c.MerchantDetails},
		{Title: "Disclaimer", Body: c.Disclaimer},
	}
	out := make([]Section, 0, len(all))
	for _, s := range all {
		if s.Body != "" {
			out = append(out, s)
		}
	}
	return out
}
