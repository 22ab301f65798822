// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/metrics"
)

// Service composes the score engine, candidate strategies, conflict
// resolver, ranker, and personalizer over a SignalProvider and a
// Store. It is safe for concurrent use.
type Service struct {
	cfg          Config
	engine       *ScoreEngine
	personalizer *Personalizer
	provider     SignalProvider
	store        Store
	strategies   []Strategy
	logger       zerolog.Logger
	now          func() time.Time
}

// NewService constructs a Service. Strategies are registered
// separately at startup via RegisterStrategy.
func NewService(cfg Config, provider SignalProvider, store Store, logger zerolog.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("service config: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: signal provider is required", ErrInvalidInput)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidInput)
	}
	return &Service{
		cfg:          cfg,
		engine:       NewScoreEngine(cfg),
		personalizer: NewPersonalizer(),
		provider:     provider,
		store:        store,
		logger:       logger.With().Str("component", "adapt").Logger(),
		now:          time.Now,
	}, nil
}

// RegisterStrategy adds a candidate generation strategy. Registration
// order determines generation order; duplicate names are rejected.
func (s *Service) RegisterStrategy(strategy Strategy) error {
	if strategy == nil {
		return fmt.Errorf("%w: strategy is nil", ErrInvalidInput)
	}
	for _, existing := range s.strategies {
		if existing.Name() == strategy.Name() {
			return fmt.Errorf("%w: strategy %q already registered", ErrInvalidInput, strategy.Name())
		}
	}
	s.strategies = append(s.strategies, strategy)
	return nil
}

// Score computes and persists a fresh adaptation score for the brand.
// The returned bool reports whether the score triggered an alert.
func (s *Service) Score(ctx context.Context, brandID string) (*AdaptationScore, bool, error) {
	score, alert, _, err := s.computeScore(ctx, brandID)
	if err != nil {
		return nil, false, err
	}
	if err := s.store.AppendScore(ctx, score); err != nil {
		return nil, false, fmt.Errorf("append score: %w", err)
	}

	metrics.ScoreComputations.WithLabelValues(string(score.Trend)).Inc()
	if alert {
		metrics.ScoreAlerts.Inc()
	}
	s.logger.Info().
		Str("brand_id", brandID).
		Int("value", score.Value).
		Str("trend", string(score.Trend)).
		Bool("alert", alert).
		Msg("Adaptation score computed")
	return score, alert, nil
}

// computeScore fetches and validates the snapshot, then computes a
// score against the latest stored score without persisting anything.
func (s *Service) computeScore(ctx context.Context, brandID string) (*AdaptationScore, bool, *BrandSnapshot, error) {
	if brandID == "" {
		return nil, false, nil, fmt.Errorf("%w: brand_id is required", ErrInvalidInput)
	}
	snap, err := s.provider.Snapshot(ctx, brandID)
	if err != nil {
		return nil, false, nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	if err := ValidateSnapshot(snap); err != nil {
		return nil, false, nil, err
	}
	previous, err := s.store.LatestScore(ctx, brandID)
	if err != nil {
		return nil, false, nil, fmt.Errorf("latest score: %w", err)
	}

	start := s.now()
	score, alert := s.engine.Compute(snap, previous)
	metrics.ScoreComputeDuration.Observe(time.Since(start).Seconds())
	return score, alert, snap, nil
}

// ScoreHistory returns the brand's stored scores within [from, to],
// oldest first. Zero bounds are open.
func (s *Service) ScoreHistory(ctx context.Context, brandID string, from, to time.Time) ([]*AdaptationScore, error) {
	if brandID == "" {
		return nil, fmt.Errorf("%w: brand_id is required", ErrInvalidInput)
	}
	scores, err := s.store.ScoreRange(ctx, brandID, from, to)
	if err != nil {
		return nil, fmt.Errorf("score range: %w", err)
	}
	return scores, nil
}

// Recommendations generates, resolves, ranks, and persists the
// recommendation list for a brand. The score computed here feeds the
// strategies only; it is not appended to history, so repeated calls
// over an unchanged snapshot and unchanged weights return the same
// ordered list.
func (s *Service) Recommendations(ctx context.Context, brandID string) ([]Recommendation, error) {
	score, _, snap, err := s.computeScore(ctx, brandID)
	if err != nil {
		return nil, err
	}
	breakdown := BreakdownOf(score)

	var candidates []Candidate
	for _, strategy := range s.strategies {
		generated := strategy.Generate(snap, breakdown, s.cfg)
		metrics.CandidatesGenerated.WithLabelValues(strategy.Name()).Add(float64(len(generated)))
		candidates = append(candidates, generated...)
	}

	resolved, dropped := ResolveConflicts(candidates)
	metrics.ConflictsDropped.Add(float64(dropped))

	weights, err := s.store.Weights(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("load weights: %w", err)
	}

	recs := Rank(brandID, namespaced(brandID, resolved), weights, s.now().UTC())
	for i := range recs {
		if err := s.persistRecommendation(ctx, &recs[i]); err != nil {
			return nil, err
		}
	}

	metrics.RecommendationsServed.Add(float64(len(recs)))
	s.logger.Debug().
		Str("brand_id", brandID).
		Int("generated", len(candidates)).
		Int("dropped", dropped).
		Int("served", len(recs)).
		Msg("Recommendations generated")
	return recs, nil
}

// namespaced prefixes candidate IDs with the brand ID so
// recommendation records are addressable globally. The common prefix
// preserves within-brand ID ordering.
func namespaced(brandID string, candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i := range out {
		out[i].ID = brandID + ":" + out[i].ID
	}
	return out
}

// persistRecommendation upserts a ranked recommendation, preserving
// the status and timestamps of an existing record with the same ID.
// A regenerated record identical to the stored one is left untouched,
// so repeated generation over unchanged inputs returns byte-identical
// lists.
func (s *Service) persistRecommendation(ctx context.Context, rec *Recommendation) error {
	existing, err := s.store.Recommendation(ctx, rec.ID)
	switch {
	case err == nil:
		stamped := rec.UpdatedAt
		rec.Status = existing.Status
		rec.CreatedAt = existing.CreatedAt
		rec.UpdatedAt = existing.UpdatedAt
		if reflect.DeepEqual(rec, existing) {
			return nil
		}
		rec.UpdatedAt = stamped
	case errors.Is(err, ErrUnknownRecommendation):
		// First sighting; keep the fresh record.
	default:
		return fmt.Errorf("load recommendation %s: %w", rec.ID, err)
	}
	if err := s.store.PutRecommendation(ctx, rec); err != nil {
		return fmt.Errorf("persist recommendation %s: %w", rec.ID, err)
	}
	return nil
}

// Feedback records a user action on a recommendation, updates the
// brand's personalization weights, and mirrors accept and reject onto
// the recommendation status. Updates for the same brand are
// serialized; the returned weights reflect this event.
func (s *Service) Feedback(ctx context.Context, brandID, recommendationID string, action FeedbackAction) (*PersonalizationWeights, error) {
	if brandID == "" {
		return nil, fmt.Errorf("%w: brand_id is required", ErrInvalidInput)
	}
	if !action.Valid() {
		return nil, fmt.Errorf("%w: action %q is not one of accept, reject, modify", ErrInvalidInput, action)
	}
	rec, err := s.store.Recommendation(ctx, recommendationID)
	if err != nil {
		return nil, err
	}
	if rec.BrandID != brandID {
		return nil, fmt.Errorf("%w: %s does not belong to brand %s", ErrUnknownRecommendation, recommendationID, brandID)
	}

	event := &FeedbackEvent{
		ID:                 uuid.New().String(),
		BrandID:            brandID,
		RecommendationID:   recommendationID,
		RecommendationType: rec.Type,
		Action:             action,
		Timestamp:          s.now().UTC(),
	}

	var updated *PersonalizationWeights
	err = s.personalizer.WithBrand(brandID, func() error {
		weights, err := s.store.Weights(ctx, brandID)
		if err != nil {
			return fmt.Errorf("load weights: %w", err)
		}
		if err := s.store.AppendEvent(ctx, event); err != nil {
			return fmt.Errorf("append feedback: %w", err)
		}
		ApplyFeedback(weights, event)
		if err := s.store.PutWeights(ctx, weights); err != nil {
			return fmt.Errorf("store weights: %w", err)
		}
		updated = weights.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionAccept:
		_, err = s.store.UpdateStatus(ctx, recommendationID, StatusAccepted, event.Timestamp)
	case ActionReject:
		_, err = s.store.UpdateStatus(ctx, recommendationID, StatusRejected, event.Timestamp)
	}
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	metrics.FeedbackEvents.WithLabelValues(string(action)).Inc()
	s.logger.Info().
		Str("brand_id", brandID).
		Str("recommendation_id", recommendationID).
		Str("action", string(action)).
		Msg("Feedback recorded")
	return updated, nil
}

// FeedbackHistory returns a brand's feedback events, oldest first.
func (s *Service) FeedbackHistory(ctx context.Context, brandID string) ([]*FeedbackEvent, error) {
	if brandID == "" {
		return nil, fmt.Errorf("%w: brand_id is required", ErrInvalidInput)
	}
	events, err := s.store.EventsByBrand(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("feedback history: %w", err)
	}
	return events, nil
}

// Implement transitions a recommendation to implemented. The effect on
// the score surfaces on the next Score call, whose ComputedAt is
// guaranteed later than every earlier history entry.
func (s *Service) Implement(ctx context.Context, recommendationID string) (*Recommendation, error) {
	rec, err := s.store.UpdateStatus(ctx, recommendationID, StatusImplemented, s.now().UTC())
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("brand_id", rec.BrandID).
		Str("recommendation_id", recommendationID).
		Msg("Recommendation implemented")
	return rec, nil
}
