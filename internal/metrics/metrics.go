// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Listing cache-aside metrics
	IncListingCacheHit()
	IncListingCacheMiss()
	ObserveListingRefreshDuration(duration time.Duration)

	// User management metrics
	IncUserCreated()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
