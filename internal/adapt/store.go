// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"context"
	"time"
)

// SignalProvider supplies the per-request brand snapshot, including
// pre-filtered applicable trend signals. The store package implements
// it over the snapshot write surface.
type SignalProvider interface {
	// Snapshot returns the current snapshot for a brand, or
	// ErrUnknownBrand when none exists.
	Snapshot(ctx context.Context, brandID string) (*BrandSnapshot, error)
}

// HistoryStore is the append-only score history, keyed by brand ID and
// computation time. Entries are never mutated or deleted.
type HistoryStore interface {
	// AppendScore appends a computed score to the history.
	AppendScore(ctx context.Context, score *AdaptationScore) error

	// LatestScore returns the most recent stored score for a brand,
	// or (nil, nil) when the brand has no history.
	LatestScore(ctx context.Context, brandID string) (*AdaptationScore, error)

	// ScoreRange returns stored scores with ComputedAt in [from, to],
	// ordered by ComputedAt ascending. A zero from or to leaves that
	// bound open.
	ScoreRange(ctx context.Context, brandID string, from, to time.Time) ([]*AdaptationScore, error)
}

// FeedbackStore is the append-only feedback log, keyed by brand ID and
// event timestamp.
type FeedbackStore interface {
	// AppendEvent appends a feedback event.
	AppendEvent(ctx context.Context, event *FeedbackEvent) error

	// EventsByBrand returns a brand's events ordered by timestamp
	// ascending.
	EventsByBrand(ctx context.Context, brandID string) ([]*FeedbackEvent, error)
}

// WeightStore holds the current personalization weights per brand.
type WeightStore interface {
	// Weights returns the stored weights for a brand, or fresh
	// default weights when none are stored.
	Weights(ctx context.Context, brandID string) (*PersonalizationWeights, error)

	// PutWeights replaces the stored weights for the brand.
	PutWeights(ctx context.Context, weights *PersonalizationWeights) error
}

// RecommendationStore persists the recommendation records feedback and
// implement calls reference.
type RecommendationStore interface {
	// PutRecommendation inserts or updates a recommendation record.
	PutRecommendation(ctx context.Context, rec *Recommendation) error

	// Recommendation returns the record with the given ID, or
	// ErrUnknownRecommendation.
	Recommendation(ctx context.Context, id string) (*Recommendation, error)

	// UpdateStatus transitions a recommendation's status and stamps
	// UpdatedAt. Returns the updated record, or
	// ErrUnknownRecommendation.
	UpdateStatus(ctx context.Context, id string, status Status, at time.Time) (*Recommendation, error)
}

// Store aggregates the persistence interfaces the service composes
// over. The store package provides Badger-backed and in-memory
// implementations.
type Store interface {
	HistoryStore
	FeedbackStore
	WeightStore
	RecommendationStore
}
