// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"reflect"
	"testing"
	"time"
)

func typedCand(id string, ctype CandidateType, impact float64) Candidate {
	c := cand(id, "attr-"+id, "v", impact)
	c.Type = ctype
	return c
}

func TestRankOrdering(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	weights := NewPersonalizationWeights("acme")

	in := []Candidate{
		typedCand("low", TypeContent, 20),      // LOW band
		typedCand("crit", TypeVisual, 85),      // CRITICAL band
		typedCand("high-b", TypeMessaging, 65), // HIGH band
		typedCand("high-a", TypeMessaging, 65), // HIGH band, same impact
		typedCand("med", TypeAudience, 40),     // MEDIUM band
	}

	recs := Rank("acme", in, weights, now)

	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	want := []string{"crit", "high-a", "high-b", "med", "low"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}

	for _, r := range recs {
		if r.Status != StatusPending {
			t.Errorf("%s status = %s, want pending", r.ID, r.Status)
		}
		if r.BrandID != "acme" {
			t.Errorf("%s brand = %s, want acme", r.ID, r.BrandID)
		}
		if r.EffectiveScore != r.EstimatedImpact {
			t.Errorf("%s effective = %v with default weights, want %v", r.ID, r.EffectiveScore, r.EstimatedImpact)
		}
	}
}

func TestRankMultiplierReordersWithinBand(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	in := []Candidate{
		typedCand("visual", TypeVisual, 62),
		typedCand("messaging", TypeMessaging, 65),
	}

	// Default weights: messaging first on impact.
	recs := Rank("acme", in, NewPersonalizationWeights("acme"), now)
	if recs[0].ID != "messaging" {
		t.Fatalf("first = %s, want messaging with default weights", recs[0].ID)
	}

	// Boost visual past messaging; both stay HIGH band.
	weights := NewPersonalizationWeights("acme")
	weights.PerType[TypeVisual] = 1.2
	recs = Rank("acme", in, weights, now)
	if recs[0].ID != "visual" {
		t.Errorf("first = %s, want visual with boosted multiplier", recs[0].ID)
	}
}

func TestRankMultiplierNeverChangesBand(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// A LOW candidate with the maximum multiplier must still rank
	// below a MEDIUM candidate with the minimum multiplier.
	weights := NewPersonalizationWeights("acme")
	weights.PerType[TypeContent] = MultiplierMax
	weights.PerType[TypeAudience] = MultiplierMin

	in := []Candidate{
		typedCand("low-boosted", TypeContent, 30),
		typedCand("med-penalized", TypeAudience, 40),
	}
	recs := Rank("acme", in, weights, now)

	if recs[0].ID != "med-penalized" {
		t.Errorf("first = %s, want med-penalized; multipliers must not cross bands", recs[0].ID)
	}
	if recs[0].Priority != PriorityMedium {
		t.Errorf("priority = %s, want medium", recs[0].Priority)
	}
}

func TestRankDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	weights := NewPersonalizationWeights("acme")
	in := []Candidate{
		typedCand("b", TypeVisual, 50),
		typedCand("a", TypeVisual, 50),
		typedCand("c", TypeContent, 70),
	}

	first := Rank("acme", in, weights, now)
	for i := 0; i < 10; i++ {
		if again := Rank("acme", in, weights, now); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		impact float64
		want   PriorityBand
	}{
		{0, PriorityLow},
		{34.9, PriorityLow},
		{35, PriorityMedium},
		{59.9, PriorityMedium},
		{60, PriorityHigh},
		{79.9, PriorityHigh},
		{80, PriorityCritical},
		{100, PriorityCritical},
	}
	for _, tt := range tests {
		if got := PriorityFor(tt.impact); got != tt.want {
			t.Errorf("PriorityFor(%v) = %s, want %s", tt.impact, got, tt.want)
		}
	}
}
