// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package strategies

import (
	"fmt"
	"sort"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
)

// Content proposes content-strategy changes when market alignment is
// low. The proposed focus names the most relevant applicable trends.
type Content struct{}

// NewContent constructs the content strategy.
func NewContent() *Content {
	return &Content{}
}

// Name implements adapt.Strategy.
func (s *Content) Name() string {
	return string(adapt.TypeContent)
}

// Generate implements adapt.Strategy.
func (s *Content) Generate(snap *adapt.BrandSnapshot, breakdown adapt.ScoreBreakdown, cfg adapt.Config) []adapt.Candidate {
	if breakdown.Alignment >= cfg.ContentAlignmentThreshold {
		return nil
	}

	impact := cfg.ImpactFor(cfg.ContentAlignmentThreshold, breakdown.Alignment)
	focus := "industry themes"
	if names := topTrendNames(snap, 2); len(names) > 0 {
		focus = joinMax(names, 2)
	}
	return []adapt.Candidate{{
		ID:    "content-content_focus-alignment",
		Type:  adapt.TypeContent,
		Title: "Refocus content on current market trends",
		Rationale: fmt.Sprintf(
			"market alignment %.0f is below the %.0f threshold; content is not tracking applicable trends",
			breakdown.Alignment, cfg.ContentAlignmentThreshold),
		EstimatedImpact:   impact,
		Priority:          adapt.PriorityFor(impact),
		AffectedAttribute: AttrContentFocus,
		ProposedValue:     fmt.Sprintf("center upcoming content on %s", focus),
		ImplementationSteps: []string{
			"Map current content themes against applicable trends",
			"Plan the next content cycle around the highest-relevance trends",
		},
	}}
}

// topTrendNames returns the names of up to n trends ordered by
// relevance descending, then name ascending.
func topTrendNames(snap *adapt.BrandSnapshot, n int) []string {
	sigs := make([]adapt.TrendSignal, len(snap.TrendSignals))
	copy(sigs, snap.TrendSignals)
	sort.Slice(sigs, func(i, j int) bool {
		if sigs[i].Relevance != sigs[j].Relevance {
			return sigs[i].Relevance > sigs[j].Relevance
		}
		return sigs[i].Name < sigs[j].Name
	})
	if len(sigs) > n {
		sigs = sigs[:n]
	}
	names := make([]string, 0, len(sigs))
	for _, sig := range sigs {
		names = append(names, sig.Name)
	}
	return names
}
