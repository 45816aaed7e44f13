package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncProfileRequest is a no-op.
func (n *NoopRecorder) IncProfileRequest() {}

// IncFactFetchSuccess is a no-op.
func (n *NoopRecorder) IncFactFetchSuccess() {}

// IncFactFetchFailure is a no-op.
func (n *NoopRecorder) IncFactFetchFailure(reason string) {}

// ObserveFactFetchDuration is a no-op.
func (n *NoopRecorder) ObserveFactFetchDuration(duration time.Duration) {}

// IncFactCacheHit is a no-op.
func (n *NoopRecorder) IncFactCacheHit() {}

// IncFactCacheMiss is a no-op.
func (n *NoopRecorder) IncFactCacheMiss() {}
