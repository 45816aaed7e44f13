package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ProfileRequests        uint64
	FactFetchSuccesses     uint64
	FactFetchTimeouts      uint64
	FactFetchTransport     uint64
	FactFetchBadStatus     uint64
	FactFetchMalformed     uint64
	FactFetchDurationCount uint64
	FactFetchDurationNs    int64
	FactCacheHits          uint64
	FactCacheMisses        uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	profileRequests        uint64
	factFetchSuccesses     uint64
	factFetchTimeouts      uint64
	factFetchTransport     uint64
	factFetchBadStatus     uint64
	factFetchMalformed     uint64
	factFetchDurationCount uint64
	factFetchDurationNs    int64
	factCacheHits          uint64
	factCacheMisses        uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ProfileRequests:        atomic.LoadUint64(&m.profileRequests),
		FactFetchSuccesses:     atomic.LoadUint64(&m.factFetchSuccesses),
		FactFetchTimeouts:      atomic.LoadUint64(&m.factFetchTimeouts),
		FactFetchTransport:     atomic.LoadUint64(&m.factFetchTransport),
		FactFetchBadStatus:     atomic.LoadUint64(&m.factFetchBadStatus),
		FactFetchMalformed:     atomic.LoadUint64(&m.factFetchMalformed),
		FactFetchDurationCount: atomic.LoadUint64(&m.factFetchDurationCount),
		FactFetchDurationNs:    atomic.LoadInt64(&m.factFetchDurationNs),
		FactCacheHits:          atomic.LoadUint64(&m.factCacheHits),
		FactCacheMisses:        atomic.LoadUint64(&m.factCacheMisses),
	}
}

// IncProfileRequest increments the profile request counter.
func (m *InMemoryRecorder) IncProfileRequest() {
	atomic.AddUint64(&m.profileRequests, 1)
}

// IncFactFetchSuccess increments the fetch success counter.
func (m *InMemoryRecorder) IncFactFetchSuccess() {
	atomic.AddUint64(&m.factFetchSuccesses, 1)
}

// IncFactFetchFailure increments the failure counter for the given reason.
// Unknown reasons count as transport errors.
func (m *InMemoryRecorder) IncFactFetchFailure(reason string) {
	switch reason {
	case "timeout":
		atomic.AddUint64(&m.factFetchTimeouts, 1)
	case "status":
		atomic.AddUint64(&m.factFetchBadStatus, 1)
	case "malformed":
		atomic.AddUint64(&m.factFetchMalformed, 1)
	default:
		atomic.AddUint64(&m.factFetchTransport, 1)
	}
}

// ObserveFactFetchDuration records a fetch duration.
func (m *InMemoryRecorder) ObserveFactFetchDuration(duration time.Duration) {
	atomic.AddUint64(&m.factFetchDurationCount, 1)
	atomic.AddInt64(&m.factFetchDurationNs, duration.Nanoseconds())
}

// IncFactCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncFactCacheHit() {
	atomic.AddUint64(&m.factCacheHits, 1)
}

// IncFactCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncFactCacheMiss() {
	atomic.AddUint64(&m.factCacheMisses, 1)
}
