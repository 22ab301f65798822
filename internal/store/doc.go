// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Package store implements persistence for the adaptation core.
//
// BadgerStore backs production deployments with an embedded BadgerDB
// key-value store. The key layout groups records by type and brand:
//
//	snapshot:<brandID>                          current brand snapshot
//	score:<brandID>:<unixnano>                  append-only score history
//	feedback:<brandID>:<unixnano>:<eventID>     append-only feedback log
//	weights:<brandID>                           personalization weights
//	rec:<recommendationID>                      recommendation records
//
// The brand component is query-escaped so free-form brand IDs cannot
// cross prefix boundaries. Timestamps are zero-padded to 20 digits so
// lexicographic key order matches chronological order; range scans
// over a brand's history are plain prefix iterations. Score and
// feedback entries are append-only and never rewritten.
//
// MemoryStore mirrors the same semantics in process memory for tests.
package store
