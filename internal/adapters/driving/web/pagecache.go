package web

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/woodenlobby/storefront/internal/logger"
)

// pageCacheSize bounds the number of distinct URLs kept.
const pageCacheSize = 512

type cachedPage struct {
	contentType string
	body        []byte
}

// PageCache keeps rendered pages for a fixed time after they were built.
type PageCache struct {
	lru *expirable.LRU[string, cachedPage]
}

// NewPageCache creates a cache whose entries expire after ttl.
// Returns nil when ttl is not positive; a nil cache never stores.
func NewPageCache(ttl time.Duration) *PageCache {
	if ttl <= 0 {
		return nil
	}
	return &PageCache{lru: expirable.NewLRU[string, cachedPage](pageCacheSize, nil, ttl)}
}

// Purge drops every entry.
func (p *PageCache) Purge() {
	if p == nil {
		return
	}
	p.lru.Purge()
}

// Len returns the number of cached pages.
func (p *PageCache) Len() int {
	if p == nil {
		return 0
	}
	return p.lru.Len()
}

// Middleware serves GET requests from the cache and stores successful
// HTML responses.
func (p *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if page, ok := p.lru.Get(key); ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, page.contentType, page.body)
			c.Abort()
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Header("X-Cache", "MISS")
		c.Next()

		contentType := rec.Header().Get("Content-Type")
		if rec.Status() == http.StatusOK && strings.HasPrefix(contentType, "text/html") {
			p.lru.Add(key, cachedPage{contentType: contentType, body: bytes.Clone(rec.body.Bytes())})
			logger.Debug("Page cache: stored %s", key)
		}
	}
}

// recordingWriter copies the body while writing it through.
type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
