package google

import (
	"golang.org/x/time/rate"
)

// ServiceType identifies a Google endpoint for rate limiting purposes.
type ServiceType string

const (
	// ServiceSheets is the Google Sheets API service.
	ServiceSheets ServiceType = "sheets"
	// ServiceExport is the published spreadsheet CSV export endpoint.
	ServiceExport ServiceType = "export"
)

// RateLimitConfig holds rate limiting configuration for a service.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each service.
var DefaultRateLimits = map[ServiceType]RateLimitConfig{
	ServiceSheets: {RequestsPerSecond: 1.0, BurstSize: 5},  // 60 reads/min/user
	ServiceExport: {RequestsPerSecond: 5.0, BurstSize: 10}, // Unpublished; observed to throttle above ~10/s
}

// RateLimiter provides rate limiting for Google requests.
// It uses a token bucket and never blocks: a request without a token
// fails at once so the caller can fall back to another source.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter for the specified service.
func NewRateLimiter(service ServiceType) *RateLimiter {
	cfg, ok := DefaultRateLimits[service]
	if !ok {
		cfg = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}
	}
	return NewRateLimiterWithConfig(cfg)
}

// NewRateLimiterWithConfig creates a rate limiter with custom configuration.
// A non-positive rate disables limiting.
func NewRateLimiterWithConfig(cfg RateLimitConfig) *RateLimiter {
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Acquire takes a token, or returns ErrRateLimited when the bucket is empty.
func (r *RateLimiter) Acquire() error {
	if !r.Allow() {
		return ErrRateLimited
	}
	return nil
}

// Allow reports whether a request can be made now, consuming a token if so.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}
