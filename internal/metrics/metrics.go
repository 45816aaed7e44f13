// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Profile endpoint metrics
	IncProfileRequest()

	// Upstream fetch metrics
	IncFactFetchSuccess()
	IncFactFetchFailure(reason string) // reason: "timeout", "transport", "status", "malformed"
	ObserveFactFetchDuration(duration time.Duration)

	// Last-good-fact cache metrics
	IncFactCacheHit()
	IncFactCacheMiss()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
