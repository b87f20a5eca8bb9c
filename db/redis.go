// file: db/redis.go

package db

import (
	"context"
	"fmt"
	"hbnb-api/logger"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds a Redis client from a redis:// URL without dialing it.
func NewRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// PingRedis ensures a connection to the Redis server can be established.
func PingRedis(ctx context.Context, rdb *redis.Client) error {
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Log.WithError(err).Error("Failed to ping Redis")
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Log.WithField("address", rdb.Options().Addr).Info("Redis connection established successfully")
	return nil
}
