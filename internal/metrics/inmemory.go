package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ListingCacheHits      uint64
	ListingCacheMisses    uint64
	ListingRefreshCount   uint64
	ListingRefreshTotalNs int64
	UsersCreated          uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	listingCacheHits      uint64
	listingCacheMisses    uint64
	listingRefreshCount   uint64
	listingRefreshTotalNs int64
	usersCreated          uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ListingCacheHits:      atomic.LoadUint64(&m.listingCacheHits),
		ListingCacheMisses:    atomic.LoadUint64(&m.listingCacheMisses),
		ListingRefreshCount:   atomic.LoadUint64(&m.listingRefreshCount),
		ListingRefreshTotalNs: atomic.LoadInt64(&m.listingRefreshTotalNs),
		UsersCreated:          atomic.LoadUint64(&m.usersCreated),
	}
}

// IncListingCacheHit increments the listing cache hit counter.
func (m *InMemoryRecorder) IncListingCacheHit() {
	atomic.AddUint64(&m.listingCacheHits, 1)
}

// IncListingCacheMiss increments the listing cache miss counter.
func (m *InMemoryRecorder) IncListingCacheMiss() {
	atomic.AddUint64(&m.listingCacheMisses, 1)
}

// ObserveListingRefreshDuration records the duration of a listing recompute.
func (m *InMemoryRecorder) ObserveListingRefreshDuration(duration time.Duration) {
	atomic.AddUint64(&m.listingRefreshCount, 1)
	atomic.AddInt64(&m.listingRefreshTotalNs, duration.Nanoseconds())
}

// IncUserCreated increments the users created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}
