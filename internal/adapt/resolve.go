// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"sort"
)

// ResolveConflicts removes conflicting candidates. Two candidates
// conflict when they target the same affected attribute with different
// proposed values. Within a conflicting group exactly one survives:
// highest estimated impact, ties broken by higher priority band, then
// by lexicographically smaller ID. Groups whose candidates all agree
// on the proposed value pass through untouched.
//
// The result is deterministic and ordered by candidate ID. dropped is
// the number of candidates removed.
func ResolveConflicts(candidates []Candidate) (kept []Candidate, dropped int) {
	groups := make(map[string][]Candidate)
	for _, c := range candidates {
		groups[c.AffectedAttribute] = append(groups[c.AffectedAttribute], c)
	}

	for _, group := range groups {
		if !conflicting(group) {
			kept = append(kept, group...)
			continue
		}
		kept = append(kept, winner(group))
		dropped += len(group) - 1
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].ID < kept[j].ID })
	return kept, dropped
}

// conflicting reports whether a group holds more than one distinct
// proposed value.
func conflicting(group []Candidate) bool {
	for i := 1; i < len(group); i++ {
		if group[i].ProposedValue != group[0].ProposedValue {
			return true
		}
	}
	return false
}

// winner selects the surviving candidate of a conflicting group.
func winner(group []Candidate) Candidate {
	best := group[0]
	for _, c := range group[1:] {
		if c.EstimatedImpact != best.EstimatedImpact {
			if c.EstimatedImpact > best.EstimatedImpact {
				best = c
			}
			continue
		}
		if c.Priority != best.Priority {
			if c.Priority > best.Priority {
				best = c
			}
			continue
		}
		if c.ID < best.ID {
			best = c
		}
	}
	return best
}
