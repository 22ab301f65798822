// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"sync"
	"testing"
	"time"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		action  FeedbackAction
		want    float64
	}{
		{"accept scales up", 1.0, ActionAccept, 1.1},
		{"reject scales down", 1.0, ActionReject, 0.9},
		{"modify unchanged", 1.0, ActionModify, 1.0},
		{"accept capped at max", 1.95, ActionAccept, MultiplierMax},
		{"accept at max stays", MultiplierMax, ActionAccept, MultiplierMax},
		{"reject floored at min", 0.105, ActionReject, MultiplierMin},
		{"reject at min stays", MultiplierMin, ActionReject, MultiplierMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjust(tt.current, tt.action)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Adjust(%v, %s) = %v, want %v", tt.current, tt.action, got, tt.want)
			}
		})
	}
}

func TestAdjustMonotonic(t *testing.T) {
	// Repeated accepts never decrease; repeated rejects never
	// increase; both converge on their bound.
	m := 1.0
	for i := 0; i < 50; i++ {
		next := Adjust(m, ActionAccept)
		if next < m {
			t.Fatalf("accept decreased multiplier: %v -> %v", m, next)
		}
		if next > MultiplierMax {
			t.Fatalf("accept exceeded max: %v", next)
		}
		m = next
	}
	if m != MultiplierMax {
		t.Errorf("after 50 accepts m = %v, want %v", m, MultiplierMax)
	}

	m = 1.0
	for i := 0; i < 50; i++ {
		next := Adjust(m, ActionReject)
		if next > m {
			t.Fatalf("reject increased multiplier: %v -> %v", m, next)
		}
		if next < MultiplierMin {
			t.Fatalf("reject undershot min: %v", next)
		}
		m = next
	}
	if m != MultiplierMin {
		t.Errorf("after 50 rejects m = %v, want %v", m, MultiplierMin)
	}
}

func TestApplyFeedback(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	weights := NewPersonalizationWeights("acme")

	ApplyFeedback(weights, &FeedbackEvent{
		RecommendationType: TypeVisual,
		Action:             ActionAccept,
		Timestamp:          ts,
	})
	if got := weights.Multiplier(TypeVisual); got != 1.1 {
		t.Errorf("visual multiplier = %v, want 1.1", got)
	}
	if got := weights.Multiplier(TypeContent); got != 1.0 {
		t.Errorf("untouched type multiplier = %v, want default 1.0", got)
	}
	if !weights.UpdatedAt.Equal(ts) {
		t.Errorf("UpdatedAt = %v, want %v", weights.UpdatedAt, ts)
	}

	ApplyFeedback(weights, &FeedbackEvent{
		RecommendationType: TypeVisual,
		Action:             ActionModify,
		Timestamp:          ts.Add(time.Minute),
	})
	if got := weights.Multiplier(TypeVisual); got != 1.1 {
		t.Errorf("modify changed multiplier to %v, want 1.1", got)
	}
}

func TestPersonalizerSerializesPerBrand(t *testing.T) {
	p := NewPersonalizer()
	const workers = 20

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.WithBrand("acme", func() error {
				// Unsynchronized read-modify-write; only the brand
				// lock keeps it correct.
				c := counter
				time.Sleep(time.Microsecond)
				counter = c + 1
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("counter = %d, want %d; per-brand updates interleaved", counter, workers)
	}
}
