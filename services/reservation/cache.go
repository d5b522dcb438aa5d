package reservation

import (
	"context"
	"time"

	"gasthaus/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache TTLs: short enough that stale capacity only ever causes a rejected
// attempt at commit time, never an overbooking.
const (
	availabilityTTL = 15 * time.Second
	openingHoursTTL = 30 * time.Second
)

// AvailabilityCache memoizes availability payloads. Implementations must
// treat their own failures as cache misses; a broken cache degrades to a
// recompute, never to an error.
type AvailabilityCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
	Clear(ctx context.Context)
}

const cacheGenerationKey = "avail:gen"

// RedisAvailabilityCache backs the cache with Redis so multiple instances
// share one staleness bound. Invalidation bumps a generation counter instead
// of scanning keys; superseded entries simply age out via their TTL.
type RedisAvailabilityCache struct {
	Client *redis.Client
}

func NewRedisAvailabilityCache(client *redis.Client) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{Client: client}
}

func (c *RedisAvailabilityCache) generation(ctx context.Context) string {
	gen, err := c.Client.Get(ctx, cacheGenerationKey).Result()
	if err != nil {
		return "0"
	}
	return gen
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.Client.Get(ctx, "avail:"+c.generation(ctx)+":"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.Client.Set(ctx, "avail:"+c.generation(ctx)+":"+key, payload, ttl).Err(); err != nil {
		utils.GetLogger().Warn("availability cache store failed", zap.Error(err))
	}
}

func (c *RedisAvailabilityCache) Clear(ctx context.Context) {
	if err := c.Client.Incr(ctx, cacheGenerationKey).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}
