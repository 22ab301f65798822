// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"reflect"
	"testing"
)

func cand(id string, attr, value string, impact float64) Candidate {
	return Candidate{
		ID:                id,
		Type:              TypeVisual,
		Title:             "t",
		Rationale:         "r",
		EstimatedImpact:   impact,
		Priority:          PriorityFor(impact),
		AffectedAttribute: attr,
		ProposedValue:     value,
	}
}

func TestResolveConflicts(t *testing.T) {
	tests := []struct {
		name        string
		in          []Candidate
		wantIDs     []string
		wantDropped int
	}{
		{
			name:        "empty",
			in:          nil,
			wantIDs:     nil,
			wantDropped: 0,
		},
		{
			name: "no conflicts across attributes",
			in: []Candidate{
				cand("b", "logo_variant", "x", 50),
				cand("a", "primary_color", "y", 40),
			},
			wantIDs:     []string{"a", "b"},
			wantDropped: 0,
		},
		{
			name: "agreeing group passes whole",
			in: []Candidate{
				cand("a", "primary_color", "navy", 50),
				cand("b", "primary_color", "navy", 70),
			},
			wantIDs:     []string{"a", "b"},
			wantDropped: 0,
		},
		{
			name: "conflict keeps highest impact",
			in: []Candidate{
				cand("a", "primary_color", "navy", 50),
				cand("b", "primary_color", "teal", 70),
			},
			wantIDs:     []string{"b"},
			wantDropped: 1,
		},
		{
			name: "impact tie breaks on priority band",
			in: []Candidate{
				// Same impact but bands forced apart.
				func() Candidate {
					c := cand("a", "primary_color", "navy", 59)
					c.Priority = PriorityMedium
					return c
				}(),
				func() Candidate {
					c := cand("b", "primary_color", "teal", 59)
					c.Priority = PriorityHigh
					return c
				}(),
			},
			wantIDs:     []string{"b"},
			wantDropped: 1,
		},
		{
			name: "full tie breaks on smaller ID",
			in: []Candidate{
				cand("z", "primary_color", "navy", 50),
				cand("a", "primary_color", "teal", 50),
			},
			wantIDs:     []string{"a"},
			wantDropped: 1,
		},
		{
			name: "mixed groups",
			in: []Candidate{
				cand("a", "primary_color", "navy", 50),
				cand("b", "primary_color", "teal", 70),
				cand("c", "content_focus", "trends", 45),
			},
			wantIDs:     []string{"b", "c"},
			wantDropped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, dropped := ResolveConflicts(tt.in)

			var ids []string
			for _, c := range kept {
				ids = append(ids, c.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("kept IDs = %v, want %v", ids, tt.wantIDs)
			}
			if dropped != tt.wantDropped {
				t.Errorf("dropped = %d, want %d", dropped, tt.wantDropped)
			}

			// One proposed value per attribute in the output.
			seen := make(map[string]string)
			for _, c := range kept {
				if prev, ok := seen[c.AffectedAttribute]; ok && prev != c.ProposedValue {
					t.Errorf("attribute %s kept conflicting values %q and %q",
						c.AffectedAttribute, prev, c.ProposedValue)
				}
				seen[c.AffectedAttribute] = c.ProposedValue
			}
		})
	}
}

func TestResolveConflictsDeterministic(t *testing.T) {
	in := []Candidate{
		cand("c", "primary_color", "navy", 50),
		cand("a", "primary_color", "teal", 50),
		cand("b", "logo_variant", "mono", 60),
	}
	first, _ := ResolveConflicts(in)
	for i := 0; i < 10; i++ {
		again, _ := ResolveConflicts(in)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}
