package driving

import "github.com/woodenlobby/storefront/internal/core/domain"

// SettingsService resolves runtime settings from configuration.
type SettingsService interface {
	// Get returns settings with defaults applied for unset keys.
	Get() (*domain.SiteSettings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.SiteSettings
}
