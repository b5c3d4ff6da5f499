package services

import (
	"fmt"
	"time"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/core/ports/driving"
	"github.com/woodenlobby/storefront/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeySiteName         = "site.name"
	KeySiteBaseURL      = "site.base_url"
	KeySiteWhatsApp     = "site.whatsapp"
	KeySitePhone        = "site.phone_display"
	KeySiteAddress      = "site.address"
	KeySiteInstagram    = "site.instagram"
	KeySiteFacebook     = "site.facebook"
	KeySiteYouTube      = "site.youtube"
	KeyCatalogStrategy  = "catalog.strategy"
	KeyCatalogURL       = "catalog.source_url"
	KeyCatalogLocalPath = "catalog.local_path"
	KeyCatalogRate      = "catalog.rate_per_second"
	KeyCatalogBurst     = "catalog.burst"
	KeyCatalogTimeout   = "catalog.timeout_seconds"
	KeyContentURL       = "content.source_url"
	KeyContentLocalPath = "content.local_path"
	KeySheetsID         = "sheets.spreadsheet_id"
	KeySheetsCatalog    = "sheets.catalog_range"
	KeySheetsContent    = "sheets.content_range"
	KeySheetsAPIKey     = "sheets.api_key"
	KeySheetsCreds      = "sheets.credentials_file"
	KeyServerAddr       = "server.addr"
	KeyServerRevalidate = "server.revalidate_seconds"
	KeyServerDev        = "server.dev"
	KeyFeaturedLimit    = "featured.limit"
	KeyLogProduction    = "log.production"
	KeyLogFile          = "log.file"
)

// SettingsService resolves SiteSettings from a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset keys take their defaults.
// An unknown acquisition strategy is an error rather than a silent default.
func (s *SettingsService) Get() (*domain.SiteSettings, error) {
	d := domain.DefaultSiteSettings()

	strategy := d.Catalog.Strategy
	if raw := s.configStore.GetString(KeyCatalogStrategy); raw != "" {
		parsed, err := domain.ParseStrategy(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyCatalogStrategy, err)
		}
		strategy = parsed
	}

	settings := &domain.SiteSettings{
		Site: domain.SiteIdentity{
			Name:         s.getString(KeySiteName, d.Site.Name),
			BaseURL:      s.getString(KeySiteBaseURL, d.Site.BaseURL),
			WhatsApp:     s.getString(KeySiteWhatsApp, d.Site.WhatsApp),
			PhoneDisplay: s.getString(KeySitePhone, d.Site.PhoneDisplay),
			Address:      s.getString(KeySiteAddress, d.Site.Address),
			Instagram:    s.getString(KeySiteInstagram, d.Site.Instagram),
			Facebook:     s.getString(KeySiteFacebook, d.Site.Facebook),
			YouTube:      s.getString(KeySiteYouTube, d.Site.YouTube),
		},
		Catalog: domain.CatalogSettings{
			SourceSettings: domain.SourceSettings{
				RemoteURL:   s.configStore.GetString(KeyCatalogURL), // No default - unset means local only
				LocalPath:   s.getString(KeyCatalogLocalPath, d.Catalog.LocalPath),
				SheetsRange: s.getString(KeySheetsCatalog, d.Catalog.SheetsRange),
			},
			Strategy:      strategy,
			RatePerSecond: s.getFloat(KeyCatalogRate, d.Catalog.RatePerSecond),
			Burst:         s.getInt(KeyCatalogBurst, d.Catalog.Burst),
			Timeout:       s.getDuration(KeyCatalogTimeout, d.Catalog.Timeout),
		},
		Content: domain.SourceSettings{
			RemoteURL:   s.configStore.GetString(KeyContentURL),
			LocalPath:   s.getString(KeyContentLocalPath, d.Content.LocalPath),
			SheetsRange: s.getString(KeySheetsContent, d.Content.SheetsRange),
		},
		Sheets: domain.SheetsSettings{
			SpreadsheetID:   s.configStore.GetString(KeySheetsID),
			APIKey:          s.configStore.GetString(KeySheetsAPIKey),
			CredentialsFile: s.configStore.GetString(KeySheetsCreds),
		},
		Server: domain.ServerSettings{
			Addr:       s.getString(KeyServerAddr, d.Server.Addr),
			Revalidate: s.getDuration(KeyServerRevalidate, d.Server.Revalidate),
			Dev:        s.getBool(KeyServerDev, d.Server.Dev),
		},
		Featured: domain.FeaturedSettings{
			Limit: s.getInt(KeyFeaturedLimit, d.Featured.Limit),
		},
		Log: domain.LogSettings{
			Production: s.getBool(KeyLogProduction, d.Log.Production),
			File:       s.configStore.GetString(KeyLogFile),
		},
	}

	if settings.Catalog.Strategy == domain.StrategySheetsAPI && settings.Sheets.SpreadsheetID == "" {
		logger.Warn("%s is sheets-api but %s is empty; only the local file will be used", KeyCatalogStrategy, KeySheetsID)
	}

	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.SiteSettings {
	return domain.DefaultSiteSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key)
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return defaultVal
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetDuration(key)
	}
	return defaultVal
}
