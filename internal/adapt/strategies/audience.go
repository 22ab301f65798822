// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package strategies

import (
	"fmt"
	"strings"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
)

// Audience proposes targeting refreshes when the audience descriptor
// is stale or incomplete. Staleness is measured against the snapshot's
// TakenAt timestamp so generation stays deterministic.
type Audience struct{}

// NewAudience constructs the audience strategy.
func NewAudience() *Audience {
	return &Audience{}
}

// Name implements adapt.Strategy.
func (s *Audience) Name() string {
	return string(adapt.TypeAudience)
}

// Generate implements adapt.Strategy.
func (s *Audience) Generate(snap *adapt.BrandSnapshot, breakdown adapt.ScoreBreakdown, cfg adapt.Config) []adapt.Candidate {
	stale, missing := audienceState(snap, cfg)
	if !stale && len(missing) == 0 {
		return nil
	}

	var reasons []string
	if stale {
		reasons = append(reasons, fmt.Sprintf(
			"audience descriptor older than the %s staleness horizon", cfg.AudienceStaleness))
	}
	if len(missing) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"descriptor missing %s", strings.Join(missing, ", ")))
	}

	impact := cfg.ImpactFor(cfg.MessagingEngagementThreshold, breakdown.Engagement)
	return []adapt.Candidate{{
		ID:                "audience-audience_segment-refresh",
		Type:              adapt.TypeAudience,
		Title:             "Refresh audience targeting data",
		Rationale:         strings.Join(reasons, "; "),
		EstimatedImpact:   impact,
		Priority:          adapt.PriorityFor(impact),
		AffectedAttribute: AttrAudienceSegment,
		ProposedValue:     "re-survey segments, interests, and channels",
		ImplementationSteps: []string{
			"Re-run audience research for the declared segments",
			"Backfill missing descriptor fields",
			"Record the refresh timestamp",
		},
	}}
}

// audienceState reports whether the descriptor is stale relative to
// the snapshot time and which descriptor fields are missing.
func audienceState(snap *adapt.BrandSnapshot, cfg adapt.Config) (bool, []string) {
	aud := snap.Audience
	if aud == nil {
		return true, []string{"segments", "age_range", "interests", "channels"}
	}

	stale := aud.UpdatedAt.IsZero()
	if !stale && !snap.TakenAt.IsZero() {
		stale = snap.TakenAt.Sub(aud.UpdatedAt) > cfg.AudienceStaleness
	}

	var missing []string
	if len(aud.Segments) == 0 {
		missing = append(missing, "segments")
	}
	if aud.AgeRange == "" {
		missing = append(missing, "age_range")
	}
	if len(aud.Interests) == 0 {
		missing = append(missing, "interests")
	}
	if len(aud.Channels) == 0 {
		missing = append(missing, "channels")
	}
	return stale, missing
}
