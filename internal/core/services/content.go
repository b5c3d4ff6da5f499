package services

import (
	"context"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/core/ports/driving"
	"github.com/woodenlobby/storefront/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService loads the site-wide generic content once and memoises it.
type ContentService struct {
	source  driven.Source
	decoder driven.ContentDecoder
	cache   driven.ContentCache
}

// NewContentService creates a new content service backed by cache.
func NewContentService(source driven.Source, decoder driven.ContentDecoder, cache driven.ContentCache) *ContentService {
	return &ContentService{
		source:  source,
		decoder: decoder,
		cache:   cache,
	}
}

// Get returns the cached content, fetching it on first use.
// Failures yield an empty record and leave the cache empty.
func (s *ContentService) Get(ctx context.Context) domain.GenericContent {
	if content, ok := s.cache.Load(); ok {
		return content
	}

	text, err := s.source.Fetch(ctx)
	if err != nil {
		logger.Warn("Generic content unavailable from %s: %v", s.source.Name(), err)
		return domain.GenericContent{}
	}

	content, err := s.decoder.DecodeGenericContent(text)
	if err != nil {
		logger.Warn("Generic content could not be decoded: %v", err)
		return domain.GenericContent{}
	}

	s.cache.Store(content)
	logger.Debug("Generic content cached from %s", s.source.Name())
	return content
}

// Reset clears the memo so the next Get fetches again.
func (s *ContentService) Reset() {
	s.cache.Clear()
	logger.Debug("Generic content cache cleared")
}
