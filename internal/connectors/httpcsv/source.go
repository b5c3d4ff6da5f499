package httpcsv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/woodenlobby/storefront/internal/connectors/google"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/logger"
)

// defaultMaxBodyBytes bounds a single export download.
const defaultMaxBodyBytes = 32 << 20

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Source fetches CSV text from a URL on every call.
type Source struct {
	url      string
	client   *http.Client
	limiter  *google.RateLimiter
	maxBytes int64
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) { s.client = c }
}

// WithTimeout bounds each request. Zero keeps the client's own setting.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			c := *s.client
			c.Timeout = d
			s.client = &c
		}
	}
}

// WithRateLimiter replaces the default export rate limiter.
func WithRateLimiter(l *google.RateLimiter) Option {
	return func(s *Source) { s.limiter = l }
}

// WithMaxBodySize replaces the download size limit.
func WithMaxBodySize(n int64) Option {
	return func(s *Source) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// New creates a source for rawURL. Google Sheets edit links are rewritten
// to their CSV export form.
func New(rawURL string, opts ...Option) *Source {
	s := &Source{
		url:      ToExportURL(rawURL),
		client:   http.DefaultClient,
		limiter:  google.NewRateLimiter(google.ServiceExport),
		maxBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the source name used in logs.
func (s *Source) Name() string {
	return "remote-csv"
}

// URL returns the effective request URL.
func (s *Source) URL() string {
	return s.url
}

// Fetch downloads the CSV text. Any non-2xx status, 429 included, is an
// error; nothing is retried.
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	if err := s.limiter.Acquire(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, s.maxBytes)
	}

	if LooksLikeHTML(body) {
		return nil, ErrNotCSV
	}

	logger.Debug("Fetched %d bytes from %s", len(body), s.url)
	return body, nil
}
