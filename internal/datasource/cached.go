package datasource

import (
	"context"
	"sync/atomic"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/gridpace/internal/models"
)

const seasonCacheKey = "season"

// CachedProvider decorates a Provider with an in-memory TTL cache. The
// validation harness replays the same season several times (baseline run,
// candidate run, one run per ablated category); only the first pass should
// touch the underlying provider.
type CachedProvider struct {
	inner Provider
	cache *cache.Cache

	hitCount  uint64
	missCount uint64
}

// NewCachedProvider wraps a provider with a TTL cache
func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: cache.New(ttl, ttl*2),
	}
}

// Name returns the decorated provider's name
func (c *CachedProvider) Name() string {
	return c.inner.Name() + "_cached"
}

// Events returns the cached season bundle, fetching it once per TTL
func (c *CachedProvider) Events(ctx context.Context) ([]models.Event, error) {
	if cached, found := c.cache.Get(seasonCacheKey); found {
		atomic.AddUint64(&c.hitCount, 1)
		if events, ok := cached.([]models.Event); ok {
			return events, nil
		}
	}
	atomic.AddUint64(&c.missCount, 1)

	events, err := c.inner.Events(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(seasonCacheKey, events)
	return events, nil
}

// Event returns a cached event bundle by identifier
func (c *CachedProvider) Event(ctx context.Context, eventID string) (*models.Event, error) {
	key := "event:" + eventID
	if cached, found := c.cache.Get(key); found {
		atomic.AddUint64(&c.hitCount, 1)
		if event, ok := cached.(*models.Event); ok {
			return event, nil
		}
	}
	atomic.AddUint64(&c.missCount, 1)

	event, err := c.inner.Event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, event)
	return event, nil
}

// Stats returns cache hit and miss counts
func (c *CachedProvider) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hitCount), atomic.LoadUint64(&c.missCount)
}
