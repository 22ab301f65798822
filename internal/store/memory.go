// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
)

// MemoryStore is an in-process implementation of adapt.Store and
// adapt.SignalProvider backed by maps. Used in tests and as a
// reference for the Badger implementation's semantics.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]*adapt.BrandSnapshot
	scores    map[string][]*adapt.AdaptationScore
	events    map[string][]*adapt.FeedbackEvent
	weights   map[string]*adapt.PersonalizationWeights
	recs      map[string]*adapt.Recommendation
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string]*adapt.BrandSnapshot),
		scores:    make(map[string][]*adapt.AdaptationScore),
		events:    make(map[string][]*adapt.FeedbackEvent),
		weights:   make(map[string]*adapt.PersonalizationWeights),
		recs:      make(map[string]*adapt.Recommendation),
	}
}

// PutSnapshot stores a clone of the snapshot so later caller
// mutations cannot reach the stored view. Matches the isolation the
// Badger store gets from serialization.
func (s *MemoryStore) PutSnapshot(ctx context.Context, snap *adapt.BrandSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snap.BrandID] = snap.Clone()
	return nil
}

// Snapshot implements adapt.SignalProvider.
func (s *MemoryStore) Snapshot(ctx context.Context, brandID string) (*adapt.BrandSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[brandID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", adapt.ErrUnknownBrand, brandID)
	}
	return snap.Clone(), nil
}

// AppendScore implements adapt.HistoryStore.
func (s *MemoryStore) AppendScore(ctx context.Context, score *adapt.AdaptationScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[score.BrandID] = append(s.scores[score.BrandID], score)
	sort.SliceStable(s.scores[score.BrandID], func(i, j int) bool {
		return s.scores[score.BrandID][i].ComputedAt.Before(s.scores[score.BrandID][j].ComputedAt)
	})
	return nil
}

// LatestScore implements adapt.HistoryStore.
func (s *MemoryStore) LatestScore(ctx context.Context, brandID string) (*adapt.AdaptationScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.scores[brandID]
	if len(history) == 0 {
		return nil, nil
	}
	return history[len(history)-1], nil
}

// ScoreRange implements adapt.HistoryStore.
func (s *MemoryStore) ScoreRange(ctx context.Context, brandID string, from, to time.Time) ([]*adapt.AdaptationScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*adapt.AdaptationScore
	for _, score := range s.scores[brandID] {
		if !from.IsZero() && score.ComputedAt.Before(from) {
			continue
		}
		if !to.IsZero() && score.ComputedAt.After(to) {
			continue
		}
		out = append(out, score)
	}
	return out, nil
}

// AppendEvent implements adapt.FeedbackStore.
func (s *MemoryStore) AppendEvent(ctx context.Context, event *adapt.FeedbackEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.BrandID] = append(s.events[event.BrandID], event)
	return nil
}

// EventsByBrand implements adapt.FeedbackStore.
func (s *MemoryStore) EventsByBrand(ctx context.Context, brandID string) ([]*adapt.FeedbackEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]*adapt.FeedbackEvent, len(s.events[brandID]))
	copy(events, s.events[brandID])
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}

// Weights implements adapt.WeightStore.
func (s *MemoryStore) Weights(ctx context.Context, brandID string) (*adapt.PersonalizationWeights, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if w, ok := s.weights[brandID]; ok {
		return w.Clone(), nil
	}
	return adapt.NewPersonalizationWeights(brandID), nil
}

// PutWeights implements adapt.WeightStore.
func (s *MemoryStore) PutWeights(ctx context.Context, weights *adapt.PersonalizationWeights) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights[weights.BrandID] = weights.Clone()
	return nil
}

// PutRecommendation implements adapt.RecommendationStore.
func (s *MemoryStore) PutRecommendation(ctx context.Context, rec *adapt.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *rec
	s.recs[rec.ID] = &clone
	return nil
}

// Recommendation implements adapt.RecommendationStore.
func (s *MemoryStore) Recommendation(ctx context.Context, id string) (*adapt.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", adapt.ErrUnknownRecommendation, id)
	}
	clone := *rec
	return &clone, nil
}

// UpdateStatus implements adapt.RecommendationStore.
func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, status adapt.Status, at time.Time) (*adapt.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", adapt.ErrUnknownRecommendation, id)
	}
	rec.Status = status
	rec.UpdatedAt = at
	clone := *rec
	return &clone, nil
}
