// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Package adapt implements the brand adaptation core: a composite
// 0-100 adaptation score, candidate generation, conflict resolution,
// personalized ranking, and an append-only feedback ledger.
//
// # Score
//
// The adaptation score is a weighted sum of three components computed
// from an immutable BrandSnapshot:
//
//	brand_consistency   (0.40)  traits covered by tone or color rules
//	market_alignment    (0.35)  mean relevance of applicable trends
//	audience_engagement (0.25)  descriptor completeness x freshness
//
// The weights are fixed constants summing to 1.0. Raw component values
// stay within [0, 100]; the composite is rounded and clamped to the
// same range. Missing snapshot facets contribute zero and are listed
// in DataCompleteness rather than failing the computation. A score
// below 60 raises an alert. Trend direction compares against the
// latest stored score; movement within 2 points is stable, as is the
// first score for a brand.
//
// # Recommendations
//
// Registered strategies (see the strategies subpackage) each examine
// the snapshot and score breakdown independently and emit candidates
// with deterministic IDs. Candidates targeting the same attribute with
// different proposed values conflict; ResolveConflicts keeps the one
// with the highest estimated impact, breaking ties by priority band
// and then by smaller ID. Rank orders the survivors by priority band,
// then by estimated impact scaled by the brand's per-type
// personalization multiplier, then by ID. Multipliers bias ordering
// only; they never change a candidate's priority band.
//
// # Feedback
//
// Feedback events are appended to a per-brand ledger and adjust the
// multiplier of the recommendation's type: accept scales up by 1.1
// (capped at 2.0), reject scales down by 0.9 (floored at 0.1), modify
// is recorded without a weight change. Updates for one brand are
// serialized; brands never contend with each other.
//
// Persistence is abstracted behind the Store interfaces; the store
// package provides Badger-backed and in-memory implementations.
package adapt
