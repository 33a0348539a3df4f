// Package cache provides a Redis read-through cache for the
// trending-projects carousel, the one public endpoint hit on every
// page load.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"estates/internal/model"

	"github.com/redis/go-redis/v9"
)

const trendingKey = "trending:projects"

// TrendingCache caches the featured-projects carousel payload. A nil
// receiver or an unreachable Redis degrades to a cache miss, never to
// an error surfaced to the caller.
type TrendingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTrendingCache connects a cache to Redis. An empty addr disables
// caching entirely and returns nil.
func NewTrendingCache(addr, password string, db int, ttl time.Duration) *TrendingCache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &TrendingCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached carousel and whether it was present.
func (c *TrendingCache) Get(ctx context.Context) ([]model.Property, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, trendingKey).Bytes()
	if err != nil {
		return nil, false
	}
	var properties []model.Property
	if err := json.Unmarshal(raw, &properties); err != nil {
		return nil, false
	}
	return properties, true
}

// Set stores the carousel payload with the configured TTL.
func (c *TrendingCache) Set(ctx context.Context, properties []model.Property) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(properties)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, trendingKey, raw, c.ttl)
}

// Invalidate drops the cached carousel after a catalog mutation.
func (c *TrendingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, trendingKey)
}

// Close releases the Redis connection.
func (c *TrendingCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
