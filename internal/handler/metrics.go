package handler

import (
	"fmt"
	"net/http"

	"github.com/mefact/mefact/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "mefact_profile_requests_total %d\n", snap.ProfileRequests)

	writeMetric(w, "mefact_fact_fetch_total{result=\"success\"} %d\n", snap.FactFetchSuccesses)
	writeMetric(w, "mefact_fact_fetch_total{result=\"timeout\"} %d\n", snap.FactFetchTimeouts)
	writeMetric(w, "mefact_fact_fetch_total{result=\"transport\"} %d\n", snap.FactFetchTransport)
	writeMetric(w, "mefact_fact_fetch_total{result=\"status\"} %d\n", snap.FactFetchBadStatus)
	writeMetric(w, "mefact_fact_fetch_total{result=\"malformed\"} %d\n", snap.FactFetchMalformed)

	writeMetric(w, "mefact_fact_fetch_duration_seconds_count %d\n", snap.FactFetchDurationCount)
	writeMetric(w, "mefact_fact_fetch_duration_seconds_sum %.6f\n", float64(snap.FactFetchDurationNs)/1e9)

	writeMetric(w, "mefact_fact_cache_hits_total %d\n", snap.FactCacheHits)
	writeMetric(w, "mefact_fact_cache_misses_total %d\n", snap.FactCacheMisses)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
