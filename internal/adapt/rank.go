// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"sort"
	"time"
)

// Rank promotes resolved candidates to recommendations and orders
// them. The effective score is the estimated impact scaled by the
// brand's personalization multiplier for the candidate type; the
// priority band is derived from the unscaled impact and never moves
// with the multiplier.
//
// Order: priority band descending, effective score descending, ID
// ascending. The result is deterministic for identical inputs.
func Rank(brandID string, candidates []Candidate, weights *PersonalizationWeights, now time.Time) []Recommendation {
	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, Recommendation{
			Candidate:      c,
			BrandID:        brandID,
			Status:         StatusPending,
			EffectiveScore: c.EstimatedImpact * weights.Multiplier(c.Type),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		if recs[i].EffectiveScore != recs[j].EffectiveScore {
			return recs[i].EffectiveScore > recs[j].EffectiveScore
		}
		return recs[i].ID < recs[j].ID
	})
	return recs
}
