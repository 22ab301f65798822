// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"fmt"
	"math"
	"time"
)

// Facet names reported in AdaptationScore.DataCompleteness when the
// corresponding snapshot section is absent.
const (
	FacetVisual   = "visual"
	FacetVoice    = "voice"
	FacetAudience = "audience"
	FacetTrends   = "trend_signals"
	FacetTraits   = "personality_traits"
)

// ScoreEngine computes adaptation scores from brand snapshots. It is
// stateless and safe for concurrent use.
type ScoreEngine struct {
	cfg Config
	now func() time.Time
}

// NewScoreEngine constructs a score engine with the given thresholds.
func NewScoreEngine(cfg Config) *ScoreEngine {
	return &ScoreEngine{cfg: cfg, now: time.Now}
}

// Compute calculates the adaptation score for a snapshot. previous is
// the latest stored score for the brand, or nil when none exists; the
// trend direction compares against it. alert reports whether the value
// fell below the alert threshold.
//
// Missing snapshot facets never fail the computation; each contributes
// zero to its component and is listed in DataCompleteness.
func (e *ScoreEngine) Compute(snap *BrandSnapshot, previous *AdaptationScore) (*AdaptationScore, bool) {
	var missing []string

	consistency, consistencyFactors, m := e.consistency(snap)
	missing = append(missing, m...)

	alignment, alignmentFactors, m := e.alignment(snap)
	missing = append(missing, m...)

	engagement, engagementFactors, m := e.engagement(snap)
	missing = append(missing, m...)

	weighted := consistency*WeightConsistency +
		alignment*WeightAlignment +
		engagement*WeightEngagement
	value := int(math.Round(weighted))
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	computedAt := e.now()
	if previous != nil && !computedAt.After(previous.ComputedAt) {
		// History keys are (brandID, computedAt); a later computation
		// must carry a strictly later timestamp even under coarse
		// clocks.
		computedAt = previous.ComputedAt.Add(time.Nanosecond)
	}

	score := &AdaptationScore{
		BrandID: snap.BrandID,
		Value:   value,
		Components: []ScoreComponent{
			{
				Name:                ComponentBrandConsistency,
				RawValue:            consistency,
				Weight:              WeightConsistency,
				ContributingFactors: consistencyFactors,
			},
			{
				Name:                ComponentMarketAlignment,
				RawValue:            alignment,
				Weight:              WeightAlignment,
				ContributingFactors: alignmentFactors,
			},
			{
				Name:                ComponentAudienceEngagement,
				RawValue:            engagement,
				Weight:              WeightEngagement,
				ContributingFactors: engagementFactors,
			},
		},
		Trend:            trendOf(value, previous),
		ComputedAt:       computedAt,
		DataCompleteness: missing,
	}
	return score, value < AlertThreshold
}

// trendOf classifies the movement of value against the previous score.
// A delta within StableDelta points, or no previous score, is stable.
func trendOf(value int, previous *AdaptationScore) TrendDirection {
	if previous == nil {
		return TrendStable
	}
	delta := value - previous.Value
	switch {
	case delta > StableDelta:
		return TrendImproving
	case delta < -StableDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// consistency measures how well visual and voice assets express the
// declared personality traits. A trait counts as covered when it has a
// tone guideline or a color usage rule.
func (e *ScoreEngine) consistency(snap *BrandSnapshot) (float64, []string, []string) {
	var missing []string
	if snap.Visual == nil {
		missing = append(missing, FacetVisual)
	}
	if snap.Voice == nil {
		missing = append(missing, FacetVoice)
	}
	if len(snap.PersonalityTraits) == 0 {
		missing = append(missing, FacetTraits)
		return 0, []string{"no personality traits declared"}, missing
	}
	if snap.Visual == nil && snap.Voice == nil {
		return 0, []string{"no visual or voice assets to evaluate"}, missing
	}

	covered := 0
	for _, trait := range snap.PersonalityTraits {
		if snap.Voice != nil {
			if _, ok := snap.Voice.ToneGuidelines[trait]; ok {
				covered++
				continue
			}
		}
		if snap.Visual != nil {
			if _, ok := snap.Visual.ColorRules[trait]; ok {
				covered++
			}
		}
	}
	raw := float64(covered) / float64(len(snap.PersonalityTraits)) * 100
	factors := []string{
		fmt.Sprintf("%d of %d personality traits covered by tone guidelines or color rules",
			covered, len(snap.PersonalityTraits)),
	}
	return raw, factors, missing
}

// alignment is the mean relevance of the applicable trend signals.
// Absence of trend data yields zero, not an error.
func (e *ScoreEngine) alignment(snap *BrandSnapshot) (float64, []string, []string) {
	if len(snap.TrendSignals) == 0 {
		return 0, []string{"no applicable trend signals"}, []string{FacetTrends}
	}
	var sum float64
	for _, sig := range snap.TrendSignals {
		sum += sig.Relevance
	}
	raw := sum / float64(len(snap.TrendSignals))
	factors := []string{
		fmt.Sprintf("mean relevance %.1f across %d applicable trends", raw, len(snap.TrendSignals)),
	}
	return raw, factors, nil
}

// engagement combines audience descriptor completeness with freshness.
// Completeness is the fraction of the four descriptor fields present;
// freshness decays linearly past the staleness horizon down to the
// configured floor.
func (e *ScoreEngine) engagement(snap *BrandSnapshot) (float64, []string, []string) {
	if snap.Audience == nil {
		return 0, []string{"no audience descriptor"}, []string{FacetAudience}
	}
	aud := snap.Audience

	present := 0
	total := 4
	if len(aud.Segments) > 0 {
		present++
	}
	if aud.AgeRange != "" {
		present++
	}
	if len(aud.Interests) > 0 {
		present++
	}
	if len(aud.Channels) > 0 {
		present++
	}
	completeness := float64(present) / float64(total)

	freshness := 1.0
	if aud.UpdatedAt.IsZero() {
		freshness = e.cfg.FreshnessFloor
	} else if age := e.now().Sub(aud.UpdatedAt); age > e.cfg.AudienceStaleness {
		// Linear decay from 1.0 at the horizon to the floor at twice
		// the horizon.
		over := float64(age-e.cfg.AudienceStaleness) / float64(e.cfg.AudienceStaleness)
		freshness = math.Max(e.cfg.FreshnessFloor, 1.0-over*(1.0-e.cfg.FreshnessFloor))
	}

	raw := completeness * freshness * 100
	factors := []string{
		fmt.Sprintf("%d of %d audience fields populated", present, total),
		fmt.Sprintf("freshness factor %.2f", freshness),
	}
	return raw, factors, nil
}

// AudienceStale reports whether the audience descriptor is missing,
// has no update timestamp, or is older than the staleness horizon.
func (e *ScoreEngine) AudienceStale(snap *BrandSnapshot) bool {
	if snap.Audience == nil || snap.Audience.UpdatedAt.IsZero() {
		return true
	}
	return e.now().Sub(snap.Audience.UpdatedAt) > e.cfg.AudienceStaleness
}
