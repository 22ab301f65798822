// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

// Strategy generates improvement candidates from a brand snapshot and
// its score breakdown. Implementations must be pure and deterministic:
// identical inputs yield identical candidates with identical IDs, in
// the same order, with no randomness and no side effects.
//
// Strategies live in the strategies subpackage and are registered on
// the Service at startup.
type Strategy interface {
	// Name identifies the strategy for logging and metrics.
	Name() string

	// Generate returns zero or more candidates. Returning an empty
	// slice means nothing triggered; it is not an error.
	Generate(snap *BrandSnapshot, breakdown ScoreBreakdown, cfg Config) []Candidate
}
