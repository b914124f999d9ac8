package geo

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"sportify/models"
)

type memoryEntry struct {
	options   []models.LocationOption
	expiresAt time.Time
}

// MemoryCache keeps listings in process memory.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), ttl: ttl}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]models.LocationOption, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || (c.ttl > 0 && time.Now().After(e.expiresAt)) {
		return nil, false
	}
	return e.options, true
}

func (c *MemoryCache) Set(_ context.Context, key string, options []models.LocationOption) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{options: options, expiresAt: time.Now().Add(c.ttl)}
}

// RedisCache shares listings across instances. Failures degrade to a miss.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]models.LocationOption, bool) {
	data, err := c.client.Get(ctx, "geo:"+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Geo cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var options []models.LocationOption
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, false
	}
	return options, true
}

func (c *RedisCache) Set(ctx context.Context, key string, options []models.LocationOption) {
	data, err := json.Marshal(options)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, "geo:"+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Geo cache write failed", zap.String("key", key), zap.Error(err))
	}
}
