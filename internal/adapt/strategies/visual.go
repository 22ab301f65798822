// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package strategies

import (
	"fmt"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
)

// Attribute names targeted by the strategies. Conflict detection
// groups candidates by these values.
const (
	AttrPrimaryColor    = "primary_color"
	AttrLogoVariant     = "logo_variant"
	AttrToneFormality   = "tone_formality"
	AttrVocabularySet   = "vocabulary_set"
	AttrContentFocus    = "content_focus"
	AttrAudienceSegment = "audience_segment"
)

// Visual proposes visual-identity updates. It triggers on low brand
// consistency, and independently on any high-relevance trend that
// mismatches the current visual kit. Both triggers can target
// primary_color with different proposed values; the resolver keeps
// the stronger one.
type Visual struct{}

// NewVisual constructs the visual identity strategy.
func NewVisual() *Visual {
	return &Visual{}
}

// Name implements adapt.Strategy.
func (s *Visual) Name() string {
	return string(adapt.TypeVisual)
}

// Generate implements adapt.Strategy.
func (s *Visual) Generate(snap *adapt.BrandSnapshot, breakdown adapt.ScoreBreakdown, cfg adapt.Config) []adapt.Candidate {
	var out []adapt.Candidate

	if breakdown.Consistency < cfg.VisualConsistencyThreshold {
		impact := cfg.ImpactFor(cfg.VisualConsistencyThreshold, breakdown.Consistency)
		current := "unset"
		if snap.Visual != nil && snap.Visual.PrimaryColor != "" {
			current = snap.Visual.PrimaryColor
		}
		out = append(out, adapt.Candidate{
			ID:    "visual-primary_color-consistency",
			Type:  adapt.TypeVisual,
			Title: "Reinforce primary color usage",
			Rationale: fmt.Sprintf(
				"brand consistency %.0f is below the %.0f threshold; visual assets do not express the declared personality",
				breakdown.Consistency, cfg.VisualConsistencyThreshold),
			EstimatedImpact:   impact,
			Priority:          adapt.PriorityFor(impact),
			AffectedAttribute: AttrPrimaryColor,
			ProposedValue:     fmt.Sprintf("standardize on %s across all assets", current),
			ImplementationSteps: []string{
				"Audit current asset usage of the primary color",
				"Add color usage rules for uncovered personality traits",
				"Update templates to the standardized palette",
			},
		})
		out = append(out, adapt.Candidate{
			ID:    "visual-logo_variant-consistency",
			Type:  adapt.TypeVisual,
			Title: "Consolidate logo variants",
			Rationale: fmt.Sprintf(
				"brand consistency %.0f is below the %.0f threshold; logo variants may be diluting recognition",
				breakdown.Consistency, cfg.VisualConsistencyThreshold),
			EstimatedImpact:   impact,
			Priority:          adapt.PriorityFor(impact),
			AffectedAttribute: AttrLogoVariant,
			ProposedValue:     "retire off-guideline logo variants",
			ImplementationSteps: []string{
				"Inventory logo variants in circulation",
				"Retire variants outside the brand guidelines",
			},
		})
	}

	if trend, ok := topMismatchedTrend(snap, cfg.HighRelevanceThreshold); ok {
		impact := cfg.ImpactFor(trend.Relevance, cfg.HighRelevanceThreshold)
		out = append(out, adapt.Candidate{
			ID:    "visual-primary_color-trend",
			Type:  adapt.TypeVisual,
			Title: fmt.Sprintf("Shift palette toward %q", trend.Name),
			Rationale: fmt.Sprintf(
				"trend %q has relevance %.0f (high-relevance threshold %.0f) and conflicts with the current visual kit",
				trend.Name, trend.Relevance, cfg.HighRelevanceThreshold),
			EstimatedImpact:   impact,
			Priority:          adapt.PriorityFor(impact),
			AffectedAttribute: AttrPrimaryColor,
			ProposedValue:     fmt.Sprintf("shift palette toward %s", trend.Name),
			ImplementationSteps: []string{
				fmt.Sprintf("Draft palette options informed by %q", trend.Name),
				"Test revised palette against existing assets",
			},
		})
	}

	return out
}

// topMismatchedTrend returns the highest-relevance trend at or above
// the threshold that is flagged as visually mismatched. Ties break on
// the lexicographically smaller name so selection is deterministic.
func topMismatchedTrend(snap *adapt.BrandSnapshot, threshold float64) (adapt.TrendSignal, bool) {
	var best adapt.TrendSignal
	found := false
	for _, sig := range snap.TrendSignals {
		if !sig.VisualMismatch || sig.Relevance < threshold {
			continue
		}
		if !found || sig.Relevance > best.Relevance ||
			(sig.Relevance == best.Relevance && sig.Name < best.Name) {
			best = sig
			found = true
		}
	}
	return best, found
}
