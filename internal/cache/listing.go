package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// usersListingKey holds the serialized array of all users.
const usersListingKey = "users:all"

// ListingTTL is the expiration for the cached user listing.
const ListingTTL = 60 * time.Second

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// GetListing retrieves the cached user listing payload.
// Returns ErrCacheMiss if the key is absent or expired.
func (c *Cache) GetListing(ctx context.Context) ([]byte, error) {
	payload, err := c.client.Get(ctx, usersListingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return payload, nil
}

// SetListing stores the serialized user listing with the listing TTL.
func (c *Cache) SetListing(ctx context.Context, payload []byte) error {
	if err := c.client.SetEx(ctx, usersListingKey, payload, ListingTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache user listing: %w", err)
	}
	return nil
}

// InvalidateListing removes the cached user listing so the next read
// recomputes it from the store. Deleting an absent key is not an error.
func (c *Cache) InvalidateListing(ctx context.Context) error {
	if err := c.client.Del(ctx, usersListingKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user listing: %w", err)
	}
	return nil
}
