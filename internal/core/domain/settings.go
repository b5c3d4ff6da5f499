package domain

import "time"

const unknownDescription = "Unknown"

// SiteSettings is the resolved runtime configuration.
type SiteSettings struct {
	Site     SiteIdentity
	Catalog  CatalogSettings
	Content  SourceSettings
	Sheets   SheetsSettings
	Server   ServerSettings
	Featured FeaturedSettings
	Log      LogSettings
}

// SiteIdentity holds merchant-facing details used by the page layer.
type SiteIdentity struct {
	Name         string
	BaseURL      string
	WhatsApp     string
	PhoneDisplay string
	Address      string
	Instagram    string
	Facebook     string
	YouTube      string
}

// CatalogSettings configures product catalog acquisition.
type CatalogSettings struct {
	SourceSettings

	// Strategy selects how raw text is acquired for both tables.
	Strategy AcquisitionStrategy

	// RatePerSecond caps outbound requests to the remote export.
	RatePerSecond float64

	// Burst is the limiter bucket size.
	Burst int

	// Timeout bounds each outbound request. Zero leaves the client default.
	Timeout time.Duration
}

// SheetsSettings configures StrategySheetsAPI.
type SheetsSettings struct {
	SpreadsheetID   string
	APIKey          string
	CredentialsFile string
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	Addr string

	// Revalidate is how long a rendered page is served from cache. Zero disables caching.
	Revalidate time.Duration

	// Dev enables the content reset endpoint and the local file watcher.
	Dev bool
}

// FeaturedSettings configures the home page featured set.
type FeaturedSettings struct {
	Limit int
}

// LogSettings configures the process logger.
type LogSettings struct {
	Production bool
	File       string
}

// DefaultSiteSettings returns the settings used when nothing is configured.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Site: SiteIdentity{
			Name:     "Woodenlobby",
			BaseURL:  "http://localhost:8080",
			WhatsApp: "919992221888",
		},
		Catalog: CatalogSettings{
			SourceSettings: SourceSettings{
				LocalPath:   "data/catalog.csv",
				SheetsRange: "Catalog",
			},
			Strategy:      StrategyRemote,
			RatePerSecond: 5,
			Burst:         10,
		},
		Content: SourceSettings{
			LocalPath:   "data/generic-content.csv",
			SheetsRange: "GenericContent",
		},
		Server: ServerSettings{
			Addr:       ":8080",
			Revalidate: 600 * time.Second,
		},
		Featured: FeaturedSettings{Limit: 8},
	}
}
