package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lookupTTL = 10 * time.Minute

// LookupCache caches taxonomy lists (statuses, priorities, categories) as
// JSON blobs. Entries expire after lookupTTL as a backstop; mutations
// invalidate eagerly via Invalidate.
type LookupCache struct {
	client *redis.Client
}

// NewLookupCache creates a LookupCache wrapping the given Redis client.
func NewLookupCache(client *redis.Client) *LookupCache {
	return &LookupCache{client: client}
}

// GetList loads the cached list under key into dest. Returns false on miss.
func (c *LookupCache) GetList(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry behaves like a miss; the next SetList overwrites it.
		return false, nil
	}
	return true, nil
}

// SetList stores the list under key (expires after lookupTTL).
func (c *LookupCache) SetList(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, key, raw, lookupTTL).Err()
}

// Invalidate removes the cached list under key.
func (c *LookupCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
