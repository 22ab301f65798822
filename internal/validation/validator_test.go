// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `validate:"required"`
	Score float64  `validate:"min=0,max=100"`
	Tags  []string `validate:"max=3"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         sample
		wantFields []string
	}{
		{
			name: "valid",
			in:   sample{Name: "ok", Score: 50},
		},
		{
			name:       "missing required",
			in:         sample{Score: 50},
			wantFields: []string{"name"},
		},
		{
			name:       "score out of range",
			in:         sample{Name: "ok", Score: 120},
			wantFields: []string{"score"},
		},
		{
			name:       "multiple failures",
			in:         sample{Score: -1, Tags: []string{"a", "b", "c", "d"}},
			wantFields: []string{"name", "score", "tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.in)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Struct() = %v, want nil", err)
				}
				return
			}

			var ferrs FieldErrors
			if !errors.As(err, &ferrs) {
				t.Fatalf("Struct() = %v, want FieldErrors", err)
			}
			if len(ferrs) != len(tt.wantFields) {
				t.Fatalf("got %d field errors %v, want %d", len(ferrs), ferrs, len(tt.wantFields))
			}
			for i, want := range tt.wantFields {
				if !strings.Contains(ferrs[i].Field, want) {
					t.Errorf("field[%d] = %q, want it to contain %q", i, ferrs[i].Field, want)
				}
				if ferrs[i].Message == "" {
					t.Errorf("field[%d] has empty message", i)
				}
			}
		})
	}
}

func TestFieldErrorsError(t *testing.T) {
	err := FieldErrors{
		{Field: "name", Message: "is required"},
		{Field: "score", Message: "must be at most 100"},
	}
	got := err.Error()
	if !strings.Contains(got, "name: is required") || !strings.Contains(got, "score: must be at most 100") {
		t.Errorf("Error() = %q, want both field messages", got)
	}
}
