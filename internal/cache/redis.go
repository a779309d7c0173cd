// Package cache provides the Redis layer: the cached user listing and the
// connectivity probe.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// The traffic here is one listing key plus a diagnostic key, so the pool
// stays small and idle connections are reclaimed quickly.
const (
	poolSize        = 8
	minIdleConns    = 1
	poolTimeout     = 3 * time.Second
	connMaxIdleTime = 2 * time.Minute
)

// Cache wraps a Redis client with the operations this service needs.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = poolSize
	opt.MinIdleConns = minIdleConns
	opt.PoolTimeout = poolTimeout
	opt.ConnMaxIdleTime = connMaxIdleTime

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client exposes the raw client for tests that inspect keys and TTLs
// directly. Application code goes through Cache methods.
func (c *Cache) Client() *redis.Client {
	return c.client
}
