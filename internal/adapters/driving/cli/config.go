package cli

import (
	"github.com/spf13/cobra"

	"github.com/woodenlobby/storefront/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireServices(cmd.Context()); err != nil {
		return err
	}

	s := siteSettings
	if configStore != nil && configStore.Path() != "" {
		cmd.Printf("Config file: %s\n\n", configStore.Path())
	}

	cmd.Println("Site:")
	cmd.Printf("  Name:       %s\n", s.Site.Name)
	cmd.Printf("  Base URL:   %s\n", s.Site.BaseURL)
	cmd.Printf("  WhatsApp:   %s\n", s.Site.WhatsApp)
	cmd.Println()

	cmd.Println("Catalog:")
	cmd.Printf("  Strategy:   %s\n", s.Catalog.Strategy)
	cmd.Printf("  Remote URL: %s\n", valueOrNone(s.Catalog.RemoteURL))
	cmd.Printf("  Local file: %s\n", valueOrNone(s.Catalog.LocalPath))
	cmd.Printf("  Rate limit: %g/s (burst %d)\n", s.Catalog.RatePerSecond, s.Catalog.Burst)
	cmd.Println()

	cmd.Println("Generic content:")
	cmd.Printf("  Remote URL: %s\n", valueOrNone(s.Content.RemoteURL))
	cmd.Printf("  Local file: %s\n", valueOrNone(s.Content.LocalPath))
	cmd.Println()

	if s.Catalog.Strategy == domain.StrategySheetsAPI {
		cmd.Println("Sheets API:")
		cmd.Printf("  Spreadsheet: %s\n", valueOrNone(s.Sheets.SpreadsheetID))
		cmd.Printf("  API key:     %s\n", maskSecret(s.Sheets.APIKey))
		cmd.Printf("  Credentials: %s\n", valueOrNone(s.Sheets.CredentialsFile))
		cmd.Println()
	}

	cmd.Println("Server:")
	cmd.Printf("  Address:    %s\n", s.Server.Addr)
	cmd.Printf("  Revalidate: %s\n", s.Server.Revalidate)
	cmd.Printf("  Dev mode:   %t\n", s.Server.Dev)
	return nil
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// maskSecret shows only the first and last four characters.
func maskSecret(key string) string {
	if key == "" {
		return "(none)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
