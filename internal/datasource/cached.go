package datasource

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/ff-toolbox/internal/models"
)

// CachedSource wraps a RankingsSource with an in-memory TTL cache so
// repeated draft-day lookups do not hammer the provider.
type CachedSource struct {
	source RankingsSource
	cache  *cache.Cache
}

// NewCachedSource creates a caching decorator around the given source
func NewCachedSource(source RankingsSource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  cache.New(ttl, ttl*2),
	}
}

// Name returns the name of the underlying rankings source
func (c *CachedSource) Name() string {
	return c.source.Name()
}

// FetchProjections returns cached projections when fresh, falling back to
// the underlying source on a miss.
func (c *CachedSource) FetchProjections(ctx context.Context, position models.Position, season int) ([]PlayerProjection, error) {
	key := cacheKey(position, season)

	if cached, found := c.cache.Get(key); found {
		if projections, ok := cached.([]PlayerProjection); ok {
			return projections, nil
		}
	}

	projections, err := c.source.FetchProjections(ctx, position, season)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, projections, cache.DefaultExpiration)
	return projections, nil
}

// Invalidate drops any cached projections for the given query
func (c *CachedSource) Invalidate(position models.Position, season int) {
	c.cache.Delete(cacheKey(position, season))
}

func cacheKey(position models.Position, season int) string {
	return fmt.Sprintf("%s:%d", position, season)
}
