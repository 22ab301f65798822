// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestPriorityBandText(t *testing.T) {
	tests := []struct {
		band PriorityBand
		text string
	}{
		{PriorityCritical, "critical"},
		{PriorityHigh, "high"},
		{PriorityMedium, "medium"},
		{PriorityLow, "low"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			data, err := json.Marshal(tt.band)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != `"`+tt.text+`"` {
				t.Errorf("marshal = %s, want %q", data, tt.text)
			}

			var back PriorityBand
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back != tt.band {
				t.Errorf("round trip = %s, want %s", back, tt.band)
			}
		})
	}
}

func TestPersonalizationWeights(t *testing.T) {
	w := NewPersonalizationWeights("acme")
	if got := w.Multiplier(TypeVisual); got != 1.0 {
		t.Errorf("fresh multiplier = %v, want 1.0", got)
	}

	w.PerType[TypeVisual] = 1.5
	clone := w.Clone()
	clone.PerType[TypeVisual] = 0.5

	if got := w.Multiplier(TypeVisual); got != 1.5 {
		t.Errorf("clone mutation leaked: multiplier = %v, want 1.5", got)
	}

	var nilWeights *PersonalizationWeights
	if got := nilWeights.Multiplier(TypeContent); got != 1.0 {
		t.Errorf("nil weights multiplier = %v, want 1.0", got)
	}
}

func TestBrandSnapshotClone(t *testing.T) {
	var nilSnap *BrandSnapshot
	if nilSnap.Clone() != nil {
		t.Error("nil snapshot clone = non-nil, want nil")
	}

	orig := &BrandSnapshot{
		BrandID:           "acme",
		CoreValues:        []string{"craft"},
		PersonalityTraits: []string{"bold"},
		Visual: &VisualKit{
			PrimaryColor:    "#112233",
			SecondaryColors: []string{"#445566"},
			ColorRules:      map[string]string{"background": "light"},
			LogoVariants:    []string{"mono"},
		},
		Voice: &VoiceProfile{
			ToneGuidelines: map[string]string{"bold": "direct"},
			Vocabulary:     []string{"handmade"},
			Variants:       []string{"social"},
		},
		Audience: &AudienceDescriptor{
			Segments:  []string{"makers"},
			Interests: []string{"diy"},
			Channels:  []string{"email"},
		},
		TrendSignals: []TrendSignal{{Name: "muted earth tones", Relevance: 80}},
	}
	clone := orig.Clone()

	clone.CoreValues[0] = "chaos"
	clone.Visual.PrimaryColor = "#000000"
	clone.Visual.ColorRules["background"] = "dark"
	clone.Voice.ToneGuidelines["bold"] = "shouty"
	clone.Audience.Segments[0] = "everyone"
	clone.TrendSignals[0].Relevance = 0

	if orig.CoreValues[0] != "craft" {
		t.Errorf("core values = %v, clone mutation leaked", orig.CoreValues)
	}
	if orig.Visual.PrimaryColor != "#112233" || orig.Visual.ColorRules["background"] != "light" {
		t.Errorf("visual = %+v, clone mutation leaked", orig.Visual)
	}
	if orig.Voice.ToneGuidelines["bold"] != "direct" {
		t.Errorf("voice = %+v, clone mutation leaked", orig.Voice)
	}
	if orig.Audience.Segments[0] != "makers" {
		t.Errorf("audience = %+v, clone mutation leaked", orig.Audience)
	}
	if orig.TrendSignals[0].Relevance != 80 {
		t.Errorf("trends = %+v, clone mutation leaked", orig.TrendSignals)
	}
}

func TestFeedbackActionValid(t *testing.T) {
	for _, a := range []FeedbackAction{ActionAccept, ActionReject, ActionModify} {
		if !a.Valid() {
			t.Errorf("%s reported invalid", a)
		}
	}
	if FeedbackAction("love").Valid() {
		t.Error("unknown action reported valid")
	}
}
