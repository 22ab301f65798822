// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/validation"
)

// SnapshotWriter is the write half of the signal store, backing the
// snapshot upsert endpoint.
type SnapshotWriter interface {
	PutSnapshot(ctx context.Context, snap *adapt.BrandSnapshot) error
}

// Handlers holds the HTTP handlers for the adaptation service.
type Handlers struct {
	svc       *adapt.Service
	snapshots SnapshotWriter
	rw        *ResponseWriter
}

// NewHandlers constructs the handler set.
func NewHandlers(svc *adapt.Service, snapshots SnapshotWriter) *Handlers {
	return &Handlers{
		svc:       svc,
		snapshots: snapshots,
		rw:        NewResponseWriter(),
	}
}

// PutSnapshot handles PUT /api/v1/brands/{brandID}/snapshot. The path
// brand ID is authoritative; a conflicting body brand_id is rejected.
func (h *Handlers) PutSnapshot(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	var snap adapt.BrandSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.rw.Error(w, r, http.StatusBadRequest, CodeInvalidInput, "malformed request body", nil)
		return
	}
	if snap.BrandID != "" && snap.BrandID != brandID {
		h.rw.Error(w, r, http.StatusBadRequest, CodeInvalidInput,
			fmt.Sprintf("body brand_id %q does not match path brand %q", snap.BrandID, brandID), nil)
		return
	}
	snap.BrandID = brandID
	if snap.TakenAt.IsZero() {
		snap.TakenAt = time.Now().UTC()
	}

	// Collection caps first so violations map to OUT_OF_RANGE rather
	// than a generic tag failure.
	if err := adapt.ValidateSnapshot(&snap); err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	if err := validation.Struct(&snap); err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	if err := h.snapshots.PutSnapshot(r.Context(), &snap); err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	h.rw.Success(w, r, map[string]any{
		"brand_id": brandID,
		"taken_at": snap.TakenAt,
	})
}

// scorePayload is the GET score response body.
type scorePayload struct {
	Score *adapt.AdaptationScore `json:"score"`
	Alert bool                   `json:"alert"`
}

// GetScore handles GET /api/v1/brands/{brandID}/score. Each call
// computes a fresh score and appends it to the history.
func (h *Handlers) GetScore(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")
	score, alert, err := h.svc.Score(r.Context(), brandID)
	if err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	h.rw.Success(w, r, scorePayload{Score: score, Alert: alert})
}

// GetScoreHistory handles GET /api/v1/brands/{brandID}/score/history.
// Optional start and end query parameters are RFC 3339 timestamps.
func (h *Handlers) GetScoreHistory(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	var from, to time.Time
	var err error
	if s := r.URL.Query().Get("start"); s != "" {
		if from, err = time.Parse(time.RFC3339, s); err != nil {
			h.rw.Error(w, r, http.StatusBadRequest, CodeInvalidInput, "start must be RFC 3339", nil)
			return
		}
	}
	if s := r.URL.Query().Get("end"); s != "" {
		if to, err = time.Parse(time.RFC3339, s); err != nil {
			h.rw.Error(w, r, http.StatusBadRequest, CodeInvalidInput, "end must be RFC 3339", nil)
			return
		}
	}

	scores, err := h.svc.ScoreHistory(r.Context(), brandID, from, to)
	if err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	h.rw.Success(w, r, map[string]any{
		"brand_id": brandID,
		"scores":   scores,
		"count":    len(scores),
	})
}

// GetRecommendations handles GET /api/v1/brands/{brandID}/recommendations.
func (h *Handlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")
	recs, err := h.svc.Recommendations(r.Context(), brandID)
	if err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	h.rw.Success(w, r, map[string]any{
		"brand_id":        brandID,
		"recommendations": recs,
		"count":           len(recs),
	})
}

// feedbackRequest is the POST feedback request body.
type feedbackRequest struct {
	RecommendationID string `json:"recommendation_id" validate:"required"`
	Action           string `json:"action" validate:"required"`
}

// PostFeedback handles POST /api/v1/brands/{brandID}/feedback.
func (h *Handlers) PostFeedback(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.rw.Error(w, r, http.StatusBadRequest, CodeInvalidInput, "malformed request body", nil)
		return
	}
	if err := validation.Struct(&req); err != nil {
		h.rw.DomainError(w, r, err)
		return
	}

	weights, err := h.svc.Feedback(r.Context(), brandID, req.RecommendationID, adapt.FeedbackAction(req.Action))
	if err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	h.rw.Success(w, r, map[string]any{
		"brand_id": brandID,
		"weights":  weights,
	})
}

// GetFeedbackHistory handles GET /api/v1/brands/{brandID}/feedback.
func (h *Handlers) GetFeedbackHistory(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")
	events, err := h.svc.FeedbackHistory(r.Context(), brandID)
	if err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	h.rw.Success(w, r, map[string]any{
		"brand_id": brandID,
		"events":   events,
		"count":    len(events),
	})
}

// PostImplement handles POST /api/v1/recommendations/{recommendationID}/implement.
func (h *Handlers) PostImplement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recommendationID")
	rec, err := h.svc.Implement(r.Context(), id)
	if err != nil {
		h.rw.DomainError(w, r, err)
		return
	}
	h.rw.Success(w, r, rec)
}

// HealthLive handles GET /api/v1/health/live.
func (h *Handlers) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.rw.Success(w, r, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.rw.Success(w, r, map[string]string{"status": "ready"})
}
