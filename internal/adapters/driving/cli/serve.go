package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/woodenlobby/storefront/internal/adapters/driving/web"
	"github.com/woodenlobby/storefront/internal/logger"
	"github.com/woodenlobby/storefront/internal/normalisers/markdown"
)

var (
	serveAddr string
	serveDev  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront web server",
	Long: `Run the storefront web server.

Rendered pages are cached for server.revalidate_seconds. With --dev the
content reset endpoint is enabled and the local fallback files are watched
for changes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "enable development endpoints and file watching")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := requireServices(ctx); err != nil {
		return err
	}

	settings := *siteSettings
	if serveAddr != "" {
		settings.Server.Addr = serveAddr
	}
	if serveDev {
		settings.Server.Dev = true
	}
	if !settings.Server.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := web.New(&settings, catalogService, contentService, markdown.New())
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	if settings.Server.Dev {
		startWatcher(ctx, srv, settings.Catalog.LocalPath, settings.Content.LocalPath)
	}

	return srv.ListenAndServe(ctx)
}

// startWatcher watches the non-empty local paths in the background.
func startWatcher(ctx context.Context, srv *web.Server, paths ...string) {
	watch := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			watch = append(watch, p)
		}
	}
	if len(watch) == 0 {
		return
	}

	go func() {
		if err := srv.WatchLocalFiles(ctx, watch...); err != nil {
			logger.Warn("File watcher stopped: %v", err)
		}
	}()
}
