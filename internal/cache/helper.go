package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON reads key and unmarshals the cached JSON into dest. Returns false
// when the key is absent or the cache is unavailable.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Stale or corrupt entry; drop it and fall through to the source.
		client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and stores it under key with the given TTL. Best-effort:
// cache failures are swallowed.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	client.Set(ctx, key, raw, ttl)
}
