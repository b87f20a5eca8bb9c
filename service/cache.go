// file: service/cache.go

package service

import (
	"context"
	"encoding/json"
	"hbnb-api/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient is the subset of the Redis client used for caching.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const (
	placesCacheKey = "places:all"
	placesCacheTTL = 10 * time.Minute
)

// cacheGet decodes the cached JSON value at key into dest. It reports false on
// a miss, a disabled cache, or an undecodable entry.
func cacheGet(ctx context.Context, cache ICacheClient, key string, dest interface{}) bool {
	if cache == nil {
		return false
	}
	raw, err := cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithError(err).WithField("key", key).Warn("Cache read failed")
		}
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func cacheSet(ctx context.Context, cache ICacheClient, key string, value interface{}, ttl time.Duration) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

func cacheDel(ctx context.Context, cache ICacheClient, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		logger.Log.WithError(err).WithField("keys", keys).Warn("Cache invalidation failed")
	}
}
