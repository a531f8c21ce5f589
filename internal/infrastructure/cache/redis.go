// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/internal/domain/port"
)

// Config represents the Redis cache configuration.
type Config struct {
	// URL is a redis:// connection URL.
	URL string
	// TTL is how long cached search results stay valid.
	TTL time.Duration
}

// RedisCache implements port.SearchCache on Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Get returns the cached result for key, or nil on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*model.ProductSearchResult, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var result model.ProductSearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		// A stale or corrupt entry is a miss, not a failure.
		slog.DebugContext(ctx, "discarding unreadable cache entry", "key", key, "error", err)
		return nil, nil
	}
	return &result, nil
}

// Set stores the result under key for the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, result *model.ProductSearchResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NewRedisCache connects to Redis and returns a search result cache.
func NewRedisCache(ctx context.Context, config Config) (port.SearchCache, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := config.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	slog.InfoContext(ctx, "redis search cache connected",
		"addr", opts.Addr,
		"ttl", ttl,
	)
	return &RedisCache{client: client, ttl: ttl}, nil
}
