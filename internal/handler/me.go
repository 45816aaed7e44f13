package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mefact/mefact/internal/metrics"
	"github.com/mefact/mefact/internal/model"
)

// FactProvider resolves the fact to render for one request.
// It never fails; degradation is handled below this boundary.
type FactProvider interface {
	GetFact(ctx context.Context) string
}

// MeHandler serves the public profile endpoint.
type MeHandler struct {
	profile model.Profile
	facts   FactProvider
	metrics metrics.Recorder
	now     func() time.Time
}

// NewMeHandler creates a MeHandler for the given immutable profile.
func NewMeHandler(profile model.Profile, facts FactProvider, recorder metrics.Recorder) *MeHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &MeHandler{
		profile: profile,
		facts:   facts,
		metrics: recorder,
		now:     time.Now,
	}
}

// Me returns the profile envelope with a fresh fact and timestamp.
// Every reachable path answers 200: upstream failures degrade into the
// fallback fact inside the FactProvider and never surface here.
//
// GET /me
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncProfileRequest()

	factText := h.facts.GetFact(r.Context())

	response := model.MeResponse{
		Status:    "success",
		User:      h.profile,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Fact:      factText,
	}

	writeJSON(w, http.StatusOK, response)
}
