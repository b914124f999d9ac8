// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"sportify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DraftCacheClient holds draft snapshots when DRAFT_STORE=redis.
	DraftCacheClient *redis.Client
	// GeoCacheClient holds province and ward directory listings.
	GeoCacheClient *redis.Client
)

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (db %d): %w", db, err)
	}
	return client, nil
}

// InitDraftCache initializes the Redis client for draft snapshots.
func InitDraftCache() error {
	client, err := newRedisClient(config.AppConfig.RedisDraftDB)
	if err != nil {
		return err
	}
	DraftCacheClient = client
	return nil
}

// InitGeoCache initializes the Redis client for the directory cache.
func InitGeoCache() error {
	client, err := newRedisClient(config.AppConfig.RedisGeoDB)
	if err != nil {
		return err
	}
	GeoCacheClient = client
	return nil
}

// CloseCaches closes every initialized Redis client.
func CloseCaches() {
	for _, c := range []*redis.Client{DraftCacheClient, GeoCacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
