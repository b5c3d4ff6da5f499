package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodenlobby/storefront/internal/adapters/driven/storage/memory"
	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/services"
	"github.com/woodenlobby/storefront/internal/normalisers/csvtable"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "storefront", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "storefront.toml", flag.DefValue)

	flag = rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "catalog", "content", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRequireServices_NoBootstrap(t *testing.T) {
	original := bootstrap
	bootstrap = nil
	defer func() { bootstrap = original }()

	err := requireServices(context.Background())
	assert.EqualError(t, err, "services not configured")
}

func TestRequireServices_UsesBootstrap(t *testing.T) {
	original := bootstrap
	defer func() { bootstrap = original }()
	defer setupTestServices()() // restores package state on exit

	catalogService, contentService, siteSettings = nil, nil, nil

	var gotPath string
	SetBootstrap(func(_ context.Context, path string) (*Services, error) {
		gotPath = path
		settings := domain.DefaultSiteSettings()
		decoder := csvtable.New()
		return &Services{
			Config:   memory.NewConfigStore(),
			Settings: &settings,
			Catalog:  services.NewCatalogService(&stubSource{data: testCatalogCSV}, decoder),
			Content:  services.NewContentService(&stubSource{}, decoder, memory.NewContentCache()),
		}, nil
	})

	require.NoError(t, requireServices(context.Background()))
	assert.Equal(t, configPath, gotPath)
	assert.NotNil(t, catalogService)
	assert.NotNil(t, contentService)
	assert.NotNil(t, siteSettings)
}

func TestRequireServices_BootstrapError(t *testing.T) {
	original := bootstrap
	defer func() { bootstrap = original }()
	defer setupTestServices()()

	catalogService, contentService, siteSettings = nil, nil, nil
	SetBootstrap(func(_ context.Context, _ string) (*Services, error) {
		return nil, domain.ErrUnsupportedStrategy
	})

	err := requireServices(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnsupportedStrategy)
	assert.Contains(t, err.Error(), "failed to initialise")
}
