package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mefact/mefact/internal/config"
	"github.com/mefact/mefact/internal/fact"
	"github.com/mefact/mefact/internal/handler"
	"github.com/mefact/mefact/internal/metrics"
	"github.com/mefact/mefact/internal/model"
	"github.com/mefact/mefact/internal/service"
)

const testFallback = "Cats sleep for around 13 to 16 hours a day."

// newTestRouter wires the full router against the given upstream URL,
// with no Redis and the static fallback.
func newTestRouter(t *testing.T, upstreamURL string) *chi.Mux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fetcher := fact.NewFetcher(nil, upstreamURL, 200*time.Millisecond, logger)
	factService := service.NewFactService(fetcher, nil, testFallback, 0, nil, logger)

	profile := model.Profile{
		Email: "jane.doe@example.com",
		Name:  "Jane Doe",
		Stack: "Go",
	}

	recorder := metrics.NewInMemory()
	h := handler.New()
	meHandler := handler.NewMeHandler(profile, factService, recorder)
	metricsHandler := handler.NewMetricsHandler(recorder)
	healthHandler := handler.NewHealthHandler(nil)

	return setupRouter(h, meHandler, healthHandler, metricsHandler, &config.Config{}, logger)
}

func TestRouter_MeWithHealthyUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fact":"A group of cats is called a clowder."}`))
	}))
	defer upstream.Close()

	router := newTestRouter(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected permissive CORS header, got %q", got)
	}

	var response model.MeResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Fact != "A group of cats is called a clowder." {
		t.Errorf("unexpected fact: %s", response.Fact)
	}

	if _, err := time.Parse(time.RFC3339, response.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", response.Timestamp, err)
	}
}

func TestRouter_MeWithFailingUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	router := newTestRouter(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Upstream failure is invisible: still 200 with the fallback fact.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response model.MeResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Fact != testFallback {
		t.Errorf("expected fallback fact, got %q", response.Fact)
	}

	if response.Status != "success" {
		t.Errorf("expected status 'success', got %s", response.Status)
	}
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fact":"f"}`))
	}))
	defer upstream.Close()

	router := newTestRouter(t, upstream.URL)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/me", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
