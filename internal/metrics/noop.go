package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncListingCacheHit is a no-op.
func (n *NoopRecorder) IncListingCacheHit() {}

// IncListingCacheMiss is a no-op.
func (n *NoopRecorder) IncListingCacheMiss() {}

// ObserveListingRefreshDuration is a no-op.
func (n *NoopRecorder) ObserveListingRefreshDuration(duration time.Duration) {}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}
