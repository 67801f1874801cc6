package route

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps provider-computed routes in Redis for a short while so
// repeated destination selections do not re-query the providers.
// Approximate results are never cached.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{redis: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, start, end Point) (Info, bool) {
	raw, err := c.redis.Get(ctx, cacheKey(start, end)).Bytes()
	if err != nil {
		return Info{}, false
	}
	var cached Info
	if err := json.Unmarshal(raw, &cached); err != nil {
		return Info{}, false
	}
	return cached, true
}

func (c *Cache) Put(ctx context.Context, start, end Point, result Info) {
	if result.Approximate {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, cacheKey(start, end), raw, c.ttl).Err()
}

// cacheKey rounds to 5 decimals (~1 m) so nearby selections share entries.
func cacheKey(start, end Point) string {
	return fmt.Sprintf("route:%.5f,%.5f:%.5f,%.5f", start.Lat, start.Lng, end.Lat, end.Lng)
}
