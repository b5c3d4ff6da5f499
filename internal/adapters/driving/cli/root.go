package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/core/ports/driving"
	"github.com/woodenlobby/storefront/internal/logger"
)

// Services is the dependency graph the commands operate on.
type Services struct {
	Config   driven.ConfigStore
	Settings *domain.SiteSettings
	Catalog  driving.CatalogService
	Content  driving.ContentService
}

// Bootstrap builds Services from the config file at configPath.
type Bootstrap func(ctx context.Context, configPath string) (*Services, error)

var (
	version    = "dev"
	configPath string
	verbose    bool

	bootstrap Bootstrap

	// Populated by requireServices, or directly by tests.
	configStore    driven.ConfigStore
	siteSettings   *domain.SiteSettings
	catalogService driving.CatalogService
	contentService driving.ContentService
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Furniture catalog website",
	Long: `storefront serves a furniture catalog maintained in a spreadsheet.

Products and site-wide content are read from a published CSV export or the
Google Sheets API, falling back to local CSV files when the remote source
cannot be read.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "storefront.toml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetBootstrap registers the function used to build services on demand.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

// requireServices builds the services once, unless they are already set.
func requireServices(ctx context.Context) error {
	if catalogService != nil && contentService != nil && siteSettings != nil {
		return nil
	}
	if bootstrap == nil {
		return errors.New("services not configured")
	}

	svc, err := bootstrap(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	configStore = svc.Config
	siteSettings = svc.Settings
	catalogService = svc.Catalog
	contentService = svc.Content
	return nil
}
