package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotCache is a best-effort Redis cache for per-city aggregation
// results. A nil receiver or nil client behaves as a permanent miss, so
// the facade works unchanged when Redis is unavailable.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSnapshotCache wraps the Redis client; rdb may be nil.
func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

// Get loads a cached value into dest, reporting whether it was present.
// Broken cache entries count as misses.
func (c *SnapshotCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false
	}
	return true
}

// Set stores a value with the cache TTL, best effort.
func (c *SnapshotCache) Set(ctx context.Context, key string, val any) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(val)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, payload, c.ttl)
}
