// Command storefront serves the Woodenlobby furniture catalog.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/woodenlobby/storefront/internal/adapters/driven/config/file"
	"github.com/woodenlobby/storefront/internal/adapters/driven/storage/memory"
	"github.com/woodenlobby/storefront/internal/adapters/driving/cli"
	"github.com/woodenlobby/storefront/internal/connectors"
	"github.com/woodenlobby/storefront/internal/core/services"
	"github.com/woodenlobby/storefront/internal/logger"
	"github.com/woodenlobby/storefront/internal/normalisers/csvtable"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := file.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli.SetBootstrap(bootstrap)
	err := cli.Execute(version)
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap builds the dependency graph from the config file at path.
func bootstrap(ctx context.Context, path string) (*cli.Services, error) {
	store, err := file.NewConfigStore(path)
	if err != nil {
		return nil, err
	}

	settings, err := services.NewSettingsService(store).Get()
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Options{
		Production: settings.Log.Production,
		File:       settings.Log.File,
	})

	sources, err := connectors.NewSources(ctx, settings, connectors.Options{})
	if err != nil {
		return nil, err
	}

	decoder := csvtable.New()
	return &cli.Services{
		Config:   store,
		Settings: settings,
		Catalog:  services.NewCatalogService(sources.Catalog, decoder),
		Content:  services.NewContentService(sources.Content, decoder, memory.NewContentCache()),
	}, nil
}
