package connectors

import (
	"context"
	"errors"
	"fmt"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/logger"
)

// Ensure Fallback implements the interface.
var _ driven.Source = (*Fallback)(nil)

// Fallback reads from a primary source and, on any failure, from a
// secondary source exactly once. There is no retry or backoff.
type Fallback struct {
	primary   driven.Source
	secondary driven.Source
}

// NewFallback composes two sources. A nil primary means the secondary is
// used directly.
func NewFallback(primary, secondary driven.Source) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
	}
}

// Name returns the composed source name.
func (f *Fallback) Name() string {
	if f.primary == nil {
		return f.secondary.Name()
	}
	return f.primary.Name() + "+" + f.secondary.Name()
}

// Fetch returns the primary's text, or the secondary's when the primary
// fails. When both fail the error wraps domain.ErrSourceUnavailable and
// both causes.
func (f *Fallback) Fetch(ctx context.Context) ([]byte, error) {
	var primaryErr error
	if f.primary != nil {
		data, err := f.primary.Fetch(ctx)
		if err == nil {
			return data, nil
		}
		primaryErr = fmt.Errorf("%s: %w", f.primary.Name(), err)
		logger.Warn("Primary source failed, using %s: %v", f.secondary.Name(), primaryErr)
	}

	data, err := f.secondary.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable,
			errors.Join(primaryErr, fmt.Errorf("%s: %w", f.secondary.Name(), err)))
	}
	return data, nil
}
