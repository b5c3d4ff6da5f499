package connectors

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"

	"github.com/woodenlobby/storefront/internal/connectors/filesystem"
	"github.com/woodenlobby/storefront/internal/connectors/google"
	"github.com/woodenlobby/storefront/internal/connectors/google/sheets"
	"github.com/woodenlobby/storefront/internal/connectors/httpcsv"
	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/logger"
)

// Resolve builds the source for a strategy. remote may be nil when no
// remote location is configured.
//
//	local       local only
//	remote      remote, then local
//	sheets-api  remote (a Sheets API source), then local
func Resolve(strategy domain.AcquisitionStrategy, remote, local driven.Source) (driven.Source, error) {
	if local == nil {
		return nil, fmt.Errorf("local source: %w", domain.ErrSourceNotConfigured)
	}
	switch strategy {
	case domain.StrategyLocal:
		return local, nil
	case domain.StrategyRemote, domain.StrategySheetsAPI:
		return NewFallback(remote, local), nil
	default:
		return nil, fmt.Errorf("%q: %w", strategy, domain.ErrUnsupportedStrategy)
	}
}

// Sources holds the resolved source for each table.
type Sources struct {
	Catalog driven.Source
	Content driven.Source
}

// Options tunes how remote sources are built.
type Options struct {
	// HTTPClient replaces http.DefaultClient for the CSV export.
	HTTPClient *http.Client

	// SheetsOptions are appended when creating the Sheets API service.
	SheetsOptions []option.ClientOption
}

// NewSources resolves both tables for settings. The content table follows
// the catalog strategy.
func NewSources(ctx context.Context, settings *domain.SiteSettings, opts Options) (*Sources, error) {
	catalogRemote, contentRemote, err := remotes(ctx, settings, opts)
	if err != nil {
		return nil, err
	}

	catalog, err := Resolve(settings.Catalog.Strategy, catalogRemote, filesystem.New(settings.Catalog.LocalPath))
	if err != nil {
		return nil, fmt.Errorf("catalog source: %w", err)
	}
	content, err := Resolve(settings.Catalog.Strategy, contentRemote, filesystem.New(settings.Content.LocalPath))
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}

	logger.Info("Catalog source: %s (%s)", catalog.Name(), settings.Catalog.Strategy.Description())
	logger.Debug("Content source: %s", content.Name())
	return &Sources{Catalog: catalog, Content: content}, nil
}

// remotes builds the primary sources. A table without a remote location
// gets a nil source.
func remotes(ctx context.Context, settings *domain.SiteSettings, opts Options) (catalog, content driven.Source, err error) {
	switch settings.Catalog.Strategy {
	case domain.StrategyRemote:
		limiter := google.NewRateLimiterWithConfig(google.RateLimitConfig{
			RequestsPerSecond: settings.Catalog.RatePerSecond,
			BurstSize:         settings.Catalog.Burst,
		})
		httpOpts := []httpcsv.Option{httpcsv.WithRateLimiter(limiter)}
		if opts.HTTPClient != nil {
			httpOpts = append(httpOpts, httpcsv.WithHTTPClient(opts.HTTPClient))
		}
		httpOpts = append(httpOpts, httpcsv.WithTimeout(settings.Catalog.Timeout))

		if settings.Catalog.RemoteURL != "" {
			catalog = httpcsv.New(settings.Catalog.RemoteURL, httpOpts...)
		}
		if settings.Content.RemoteURL != "" {
			content = httpcsv.New(settings.Content.RemoteURL, httpOpts...)
		}

	case domain.StrategySheetsAPI:
		if settings.Sheets.SpreadsheetID == "" {
			return nil, nil, nil
		}
		svc, err := google.NewSheetsService(ctx, google.Credentials{
			APIKey:          settings.Sheets.APIKey,
			CredentialsFile: settings.Sheets.CredentialsFile,
		}, opts.SheetsOptions...)
		if err != nil {
			return nil, nil, err
		}
		limiter := google.NewRateLimiter(google.ServiceSheets)
		catalog = sheets.New(svc, settings.Sheets.SpreadsheetID, settings.Catalog.SheetsRange, limiter)
		if settings.Content.SheetsRange != "" {
			content = sheets.New(svc, settings.Sheets.SpreadsheetID, settings.Content.SheetsRange, limiter)
		}
	}
	return catalog, content, nil
}
