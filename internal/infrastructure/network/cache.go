package network

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// defaultCacheTTL bounds how stale a cached GET response may be
const defaultCacheTTL = 30 * time.Second

// CachingDispatcher decorates a Dispatcher with a TTL cache for GET
// responses. Non-GET requests pass straight through and drop the cached
// entries of the site they touch, so a write is observable on the next read
// without disturbing other sites' entries.
type CachingDispatcher struct {
	inner Dispatcher
	cache *gocache.Cache
}

// NewCachingDispatcher wraps the given dispatcher. A zero TTL falls back to
// the default.
func NewCachingDispatcher(inner Dispatcher, ttl time.Duration) *CachingDispatcher {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachingDispatcher{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Dispatch serves cached GET responses within the TTL, delegating everything
// else to the wrapped dispatcher.
func (d *CachingDispatcher) Dispatch(ctx context.Context, req *Request) ([]byte, error) {
	if req.Method != http.MethodGet {
		body, err := d.inner.Dispatch(ctx, req)
		if err == nil {
			d.flushSite(req.SiteID)
		}
		return body, err
	}

	key := req.CacheKey()
	if cached, ok := d.cache.Get(key); ok {
		return append([]byte(nil), cached.([]byte)...), nil
	}

	body, err := d.inner.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	d.cache.Set(key, append([]byte(nil), body...), gocache.DefaultExpiration)
	return body, nil
}

// flushSite drops every cached GET response of one site. Only GET responses
// are cached, so the key prefix pins both the method and the site.
func (d *CachingDispatcher) flushSite(siteID int64) {
	prefix := fmt.Sprintf("%s %d ", http.MethodGet, siteID)
	for key := range d.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			d.cache.Delete(key)
		}
	}
}

// Ensure CachingDispatcher implements the Dispatcher interface
var _ Dispatcher = (*CachingDispatcher)(nil)
