package cache

import (
	"context"
	"fmt"
	"time"
)

// probeKey is the fixed diagnostic key for connectivity checks.
// It carries no TTL; the value is ad hoc and unrelated to the data model.
const probeKey = "test:key"

// ProbeResult describes one cache write/read round trip.
type ProbeResult struct {
	Key            string
	SetValue       string
	RetrievedValue string
}

// ProbeRoundTrip writes a timestamped value under the diagnostic key and
// reads it back, reporting both sides of the trip. Used to verify the
// cache connection is live.
func (c *Cache) ProbeRoundTrip(ctx context.Context) (*ProbeResult, error) {
	value := "Hello at " + time.Now().UTC().Format(time.RFC3339)

	if err := c.client.Set(ctx, probeKey, value, 0).Err(); err != nil {
		return nil, fmt.Errorf("probe set failed: %w", err)
	}

	retrieved, err := c.client.Get(ctx, probeKey).Result()
	if err != nil {
		return nil, fmt.Errorf("probe get failed: %w", err)
	}

	return &ProbeResult{
		Key:            probeKey,
		SetValue:       value,
		RetrievedValue: retrieved,
	}, nil
}
