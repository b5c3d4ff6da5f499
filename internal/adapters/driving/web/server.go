package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/woodenlobby/storefront/internal/connectors/filesystem"
	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driving"
	"github.com/woodenlobby/storefront/internal/logger"
	"github.com/woodenlobby/storefront/internal/normalisers/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// Server is the storefront HTTP server.
type Server struct {
	settings *domain.SiteSettings
	catalog  driving.CatalogService
	content  driving.ContentService
	pages    *PageCache
	engine   *gin.Engine
}

// New builds the router and parses the embedded templates.
func New(
	settings *domain.SiteSettings,
	catalog driving.CatalogService,
	content driving.ContentService,
	renderer *markdown.Renderer,
) (*Server, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: settings are required", domain.ErrInvalidInput)
	}
	if renderer == nil {
		renderer = markdown.New()
	}

	tmpl, err := template.New("").
		Funcs(templateFuncs(settings.Site, renderer)).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		settings: settings,
		catalog:  catalog,
		content:  content,
		pages:    NewPageCache(settings.Server.Revalidate),
		engine:   gin.New(),
	}
	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery(), requestID(), accessLog())
	s.routes()

	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// PurgeCache drops every cached page.
func (s *Server) PurgeCache() {
	s.pages.Purge()
}

// ResetContent clears the generic content cache and the page cache.
func (s *Server) ResetContent() {
	s.content.Reset()
	s.pages.Purge()
	logger.Info("Generic content and page cache cleared")
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.settings.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// WatchLocalFiles resets cached content whenever a local fallback file changes.
// Blocks until ctx is cancelled.
func (s *Server) WatchLocalFiles(ctx context.Context, paths ...string) error {
	return filesystem.Watch(ctx, paths, func(path string) {
		logger.Info("Local file changed: %s", path)
		s.ResetContent()
	})
}
