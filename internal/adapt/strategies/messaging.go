// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package strategies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
)

// Messaging proposes voice and messaging adjustments. It triggers on
// low audience engagement, and independently on declared personality
// traits that lack a tone guideline.
type Messaging struct{}

// NewMessaging constructs the messaging strategy.
func NewMessaging() *Messaging {
	return &Messaging{}
}

// Name implements adapt.Strategy.
func (s *Messaging) Name() string {
	return string(adapt.TypeMessaging)
}

// Generate implements adapt.Strategy.
func (s *Messaging) Generate(snap *adapt.BrandSnapshot, breakdown adapt.ScoreBreakdown, cfg adapt.Config) []adapt.Candidate {
	var out []adapt.Candidate

	if breakdown.Engagement < cfg.MessagingEngagementThreshold {
		impact := cfg.ImpactFor(cfg.MessagingEngagementThreshold, breakdown.Engagement)
		formality := "casual"
		if snap.Voice != nil && snap.Voice.Formality != "" {
			formality = snap.Voice.Formality
		}
		out = append(out, adapt.Candidate{
			ID:    "messaging-tone_formality-engagement",
			Type:  adapt.TypeMessaging,
			Title: "Adjust tone formality for the target audience",
			Rationale: fmt.Sprintf(
				"audience engagement %.0f is below the %.0f threshold; the current %s register may not resonate",
				breakdown.Engagement, cfg.MessagingEngagementThreshold, formality),
			EstimatedImpact:   impact,
			Priority:          adapt.PriorityFor(impact),
			AffectedAttribute: AttrToneFormality,
			ProposedValue:     "calibrate register against audience segments",
			ImplementationSteps: []string{
				"Review recent messaging performance by segment",
				"Pilot an adjusted register on the lowest-engagement channel",
			},
		})
	}

	if uncovered := uncoveredTraits(snap); len(uncovered) > 0 {
		impact := cfg.ImpactFor(cfg.MessagingEngagementThreshold,
			cfg.MessagingEngagementThreshold-float64(len(uncovered))*10)
		out = append(out, adapt.Candidate{
			ID:    "messaging-vocabulary_set-coverage",
			Type:  adapt.TypeMessaging,
			Title: "Extend tone guidelines to uncovered traits",
			Rationale: fmt.Sprintf(
				"%d personality traits lack tone guidelines: %s",
				len(uncovered), joinMax(uncovered, 3)),
			EstimatedImpact:   impact,
			Priority:          adapt.PriorityFor(impact),
			AffectedAttribute: AttrVocabularySet,
			ProposedValue:     fmt.Sprintf("add tone guidelines for %s", joinMax(uncovered, 3)),
			ImplementationSteps: []string{
				"Draft tone guidance for each uncovered trait",
				"Fold new guidance into the voice profile",
			},
		})
	}

	return out
}

// uncoveredTraits returns declared traits without a tone guideline,
// sorted for deterministic output.
func uncoveredTraits(snap *adapt.BrandSnapshot) []string {
	var out []string
	for _, trait := range snap.PersonalityTraits {
		covered := false
		if snap.Voice != nil {
			_, covered = snap.Voice.ToneGuidelines[trait]
		}
		if !covered {
			out = append(out, trait)
		}
	}
	sort.Strings(out)
	return out
}

// joinMax joins up to n strings with commas, appending a count marker
// when more were present.
func joinMax(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(items[:n], ", "), len(items)-n)
}
