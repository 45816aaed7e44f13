// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mefact/mefact/internal/cache"
	"github.com/mefact/mefact/internal/fact"
	"github.com/mefact/mefact/internal/metrics"
)

// Fetcher retrieves one fact from the upstream API per call.
type Fetcher interface {
	Fetch(ctx context.Context) fact.Result
}

// LastFactStore stores the most recently fetched fact.
type LastFactStore interface {
	GetLastFact(ctx context.Context) (string, error)
	SetLastFact(ctx context.Context, fact string, ttl time.Duration) error
}

// FactService resolves the fact for each request: fetch from upstream,
// fall back to the last known good fact when a store is configured,
// and finally to the static fallback string. It never fails.
type FactService struct {
	fetcher  Fetcher
	store    LastFactStore // nil disables the last-good-fact cache
	fallback string
	cacheTTL time.Duration
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewFactService creates a FactService. Pass a nil store to disable caching.
func NewFactService(fetcher Fetcher, store LastFactStore, fallback string, cacheTTL time.Duration, recorder metrics.Recorder, logger *slog.Logger) *FactService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &FactService{
		fetcher:  fetcher,
		store:    store,
		fallback: fallback,
		cacheTTL: cacheTTL,
		metrics:  recorder,
		logger:   logger,
	}
}

// GetFact returns the fact to render for one request.
// Degradation is invisible to the caller; only logs and metrics record it.
func (s *FactService) GetFact(ctx context.Context) string {
	start := time.Now()
	result := s.fetcher.Fetch(ctx)
	s.metrics.ObserveFactFetchDuration(time.Since(start))

	if !result.Degraded() {
		s.metrics.IncFactFetchSuccess()
		s.storeLastFact(ctx, result.Fact())
		return result.Fact()
	}

	s.metrics.IncFactFetchFailure(string(result.Reason()))

	if s.store != nil {
		cached, err := s.store.GetLastFact(ctx)
		if err == nil {
			s.metrics.IncFactCacheHit()
			return cached
		}
		s.metrics.IncFactCacheMiss()
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("reading last-good fact failed", slog.String("error", err.Error()))
		}
	}

	return s.fallback
}

// storeLastFact writes the fact to the store, best effort.
func (s *FactService) storeLastFact(ctx context.Context, factText string) {
	if s.store == nil {
		return
	}
	if err := s.store.SetLastFact(ctx, factText, s.cacheTTL); err != nil {
		s.logger.Warn("storing last-good fact failed", slog.String("error", err.Error()))
	}
}
