// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *ScoreEngine {
	e := NewScoreEngine(DefaultConfig())
	e.now = func() time.Time { return testNow }
	return e
}

// snapshotWithRaw builds a snapshot whose three raw component values
// come out to the given targets under the default config and a fixed
// clock. consistency and alignment admit any value via trait coverage
// and trend relevance; engagement is full completeness times a
// freshness factor dialed in through the audience age.
func snapshotWithRaw(t *testing.T, consistencyCovered, consistencyTotal int, trendRelevance float64, audienceAge time.Duration) *BrandSnapshot {
	t.Helper()
	traits := make([]string, consistencyTotal)
	tone := make(map[string]string)
	for i := range traits {
		traits[i] = string(rune('a' + i))
		if i < consistencyCovered {
			tone[traits[i]] = "guideline"
		}
	}
	return &BrandSnapshot{
		BrandID:           "acme",
		PersonalityTraits: traits,
		Visual:            &VisualKit{PrimaryColor: "#102030"},
		Voice:             &VoiceProfile{ToneGuidelines: tone},
		Audience: &AudienceDescriptor{
			Segments:  []string{"early adopters"},
			AgeRange:  "25-40",
			Interests: []string{"design"},
			Channels:  []string{"social"},
			UpdatedAt: testNow.Add(-audienceAge),
		},
		TrendSignals: []TrendSignal{{Name: "minimalism", Relevance: trendRelevance}},
		TakenAt:      testNow,
	}
}

func TestComputeCompositeScore(t *testing.T) {
	e := newTestEngine()

	// Raw components 50 / 40 / 90: one of two traits covered, a single
	// trend at relevance 40, and a complete audience aged 102 days so
	// freshness lands on 0.9 under the 90-day horizon.
	snap := snapshotWithRaw(t, 1, 2, 40, 102*24*time.Hour)
	previous := &AdaptationScore{
		BrandID:    "acme",
		Value:      65,
		ComputedAt: testNow.Add(-time.Hour),
	}

	score, alert := e.Compute(snap, previous)

	if score.Value != 57 {
		t.Errorf("Value = %d, want 57", score.Value)
	}
	if !alert {
		t.Error("alert = false, want true for score below 60")
	}
	if score.Trend != TrendDeclining {
		t.Errorf("Trend = %s, want declining against previous 65", score.Trend)
	}
	if len(score.DataCompleteness) != 0 {
		t.Errorf("DataCompleteness = %v, want empty for a complete snapshot", score.DataCompleteness)
	}

	wantRaw := map[string]float64{
		ComponentBrandConsistency:   50,
		ComponentMarketAlignment:    40,
		ComponentAudienceEngagement: 90,
	}
	for name, want := range wantRaw {
		c := score.Component(name)
		if c == nil {
			t.Fatalf("component %s missing", name)
		}
		if diff := c.RawValue - want; diff > 0.0001 || diff < -0.0001 {
			t.Errorf("%s RawValue = %v, want %v", name, c.RawValue, want)
		}
		if len(c.ContributingFactors) == 0 {
			t.Errorf("%s has no contributing factors", name)
		}
	}
}

func TestComputeWeightsSumToOne(t *testing.T) {
	e := newTestEngine()
	score, _ := e.Compute(snapshotWithRaw(t, 2, 2, 80, time.Hour), nil)

	if len(score.Components) != 3 {
		t.Fatalf("got %d components, want 3", len(score.Components))
	}
	var sum float64
	for _, c := range score.Components {
		sum += c.Weight
	}
	if diff := sum - 1.0; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
}

func TestComputeMissingFacets(t *testing.T) {
	tests := []struct {
		name        string
		snap        *BrandSnapshot
		wantMissing []string
	}{
		{
			name:        "empty snapshot",
			snap:        &BrandSnapshot{BrandID: "bare", TakenAt: testNow},
			wantMissing: []string{FacetVisual, FacetVoice, FacetTraits, FacetTrends, FacetAudience},
		},
		{
			name: "no trends",
			snap: &BrandSnapshot{
				BrandID:           "acme",
				PersonalityTraits: []string{"bold"},
				Visual:            &VisualKit{ColorRules: map[string]string{"bold": "saturated"}},
				Voice:             &VoiceProfile{},
				Audience:          &AudienceDescriptor{Segments: []string{"x"}, UpdatedAt: testNow},
				TakenAt:           testNow,
			},
			wantMissing: []string{FacetTrends},
		},
		{
			name: "no audience",
			snap: &BrandSnapshot{
				BrandID:           "acme",
				PersonalityTraits: []string{"bold"},
				Visual:            &VisualKit{},
				Voice:             &VoiceProfile{ToneGuidelines: map[string]string{"bold": "direct"}},
				TrendSignals:      []TrendSignal{{Name: "t", Relevance: 50}},
				TakenAt:           testNow,
			},
			wantMissing: []string{FacetAudience},
		},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := e.Compute(tt.snap, nil)

			if score.Value < 0 || score.Value > 100 {
				t.Errorf("Value = %d, want in [0,100]", score.Value)
			}
			got := make(map[string]bool)
			for _, m := range score.DataCompleteness {
				got[m] = true
			}
			for _, want := range tt.wantMissing {
				if !got[want] {
					t.Errorf("DataCompleteness missing %q, got %v", want, score.DataCompleteness)
				}
			}
		})
	}
}

func TestTrendOf(t *testing.T) {
	prev := &AdaptationScore{Value: 65}
	tests := []struct {
		name     string
		value    int
		previous *AdaptationScore
		want     TrendDirection
	}{
		{"no previous", 30, nil, TrendStable},
		{"within delta up", 67, prev, TrendStable},
		{"within delta down", 63, prev, TrendStable},
		{"just above delta", 68, prev, TrendImproving},
		{"just below delta", 62, prev, TrendDeclining},
		{"equal", 65, prev, TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trendOf(tt.value, tt.previous); got != tt.want {
				t.Errorf("trendOf(%d) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestComputedAtStrictlyAfterPrevious(t *testing.T) {
	e := newTestEngine()
	snap := snapshotWithRaw(t, 2, 2, 80, time.Hour)

	// Previous entry stamped at the frozen clock; the new score must
	// still land strictly later.
	previous := &AdaptationScore{BrandID: "acme", Value: 70, ComputedAt: testNow}
	score, _ := e.Compute(snap, previous)

	if !score.ComputedAt.After(previous.ComputedAt) {
		t.Errorf("ComputedAt %v not after previous %v", score.ComputedAt, previous.ComputedAt)
	}
}

func TestComputeValueAlwaysInRange(t *testing.T) {
	e := newTestEngine()
	snaps := []*BrandSnapshot{
		{BrandID: "a", TakenAt: testNow},
		snapshotWithRaw(t, 2, 2, 100, time.Hour),
		snapshotWithRaw(t, 0, 5, 0, 1000*24*time.Hour),
	}
	for _, snap := range snaps {
		score, alert := e.Compute(snap, nil)
		if score.Value < 0 || score.Value > 100 {
			t.Errorf("Value = %d, want in [0,100]", score.Value)
		}
		if wantAlert := score.Value < AlertThreshold; alert != wantAlert {
			t.Errorf("alert = %v for value %d", alert, score.Value)
		}
	}
}
