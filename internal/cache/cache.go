package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Keys for the documents kept hot. Write paths must invalidate these.
const (
	KeyMasterPrices    = "cache:master_prices"
	KeyActiveLocations = "cache:locations:active"
)

// Cache is a thin read-through JSON layer over Redis. A nil client degrades
// to a permanent miss so the service keeps working without Redis.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetJSON loads key into dst. Returns false on miss or any Redis error;
// a cache problem must never fail the read path.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// transient error, treat as miss
			return false
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// SetJSON stores v under key with the cache TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops keys after a write-through update.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
