package fact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// maxBodyBytes caps how much of the upstream response is read.
const maxBodyBytes = 64 * 1024

// Fetcher issues single-attempt GET requests against the upstream fact API.
// Safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	url     string
	timeout time.Duration
	logger  *slog.Logger
}

// NewFetcher creates a Fetcher for the given upstream URL and per-attempt timeout.
func NewFetcher(client *http.Client, upstreamURL string, timeout time.Duration, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = NewHTTPClient()
	}
	return &Fetcher{
		client:  client,
		url:     upstreamURL,
		timeout: timeout,
		logger:  logger,
	}
}

// upstreamBody is the subset of the upstream response we care about.
type upstreamBody struct {
	Fact string `json:"fact"`
}

// Fetch performs one GET against the upstream API.
// It never returns an error: timeouts, transport failures, non-200 statuses,
// and malformed bodies all collapse into a degraded Result. Each attempt is
// tagged with a ULID so success and failure lines can be correlated.
func (f *Fetcher) Fetch(ctx context.Context) Result {
	attemptID := ulid.Make().String()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		f.logger.Warn("building upstream request failed",
			slog.String("attempt_id", attemptID),
			slog.String("error", err.Error()),
		)
		return Degrade(ReasonTransport)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mefact/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		reason := categorizeTransportError(err)
		f.logger.Warn("upstream fact fetch failed",
			slog.String("attempt_id", attemptID),
			slog.String("reason", string(reason)),
			slog.Float64("duration_ms", durationMS(start)),
			slog.String("error", err.Error()),
		)
		return Degrade(reason)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		f.logger.Warn("upstream fact fetch returned non-200",
			slog.String("attempt_id", attemptID),
			slog.String("reason", string(ReasonStatus)),
			slog.Int("status_code", resp.StatusCode),
			slog.Float64("duration_ms", durationMS(start)),
		)
		return Degrade(ReasonStatus)
	}

	var body upstreamBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		f.logger.Warn("upstream fact body is not valid JSON",
			slog.String("attempt_id", attemptID),
			slog.String("reason", string(ReasonMalformed)),
			slog.String("error", err.Error()),
		)
		return Degrade(ReasonMalformed)
	}

	factText := strings.TrimSpace(body.Fact)
	if factText == "" {
		f.logger.Warn("upstream fact body has no fact field",
			slog.String("attempt_id", attemptID),
			slog.String("reason", string(ReasonMalformed)),
		)
		return Degrade(ReasonMalformed)
	}

	f.logger.Debug("upstream fact fetched",
		slog.String("attempt_id", attemptID),
		slog.Float64("duration_ms", durationMS(start)),
	)
	return Success(factText)
}

// categorizeTransportError separates deadline expiry from other network errors.
func categorizeTransportError(err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return ReasonTimeout
	}

	return ReasonTransport
}

func durationMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
