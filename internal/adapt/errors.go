// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the adaptation core. Callers distinguish them
// with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrInvalidInput indicates a malformed or incomplete request,
	// such as an empty brand ID or an unrecognized feedback action.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRangeCollection indicates a snapshot collection exceeds
	// its configured cap. The wrapping OutOfRangeError carries the
	// field, the offending count, and the cap.
	ErrOutOfRangeCollection = errors.New("collection out of range")

	// ErrUnknownRecommendation indicates a feedback or implement call
	// referenced a recommendation ID that does not exist.
	ErrUnknownRecommendation = errors.New("unknown recommendation")

	// ErrUnknownBrand indicates no snapshot exists for the brand.
	ErrUnknownBrand = errors.New("unknown brand")
)

// OutOfRangeError reports a collection that exceeds its cap.
type OutOfRangeError struct {
	// Field is the snapshot field that violated its cap.
	Field string

	// Count is the offending element count.
	Count int

	// Max is the configured cap.
	Max int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %d elements exceeds maximum of %d", e.Field, e.Count, e.Max)
}

// Unwrap makes the error match ErrOutOfRangeCollection via errors.Is.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRangeCollection
}

// NewOutOfRangeError constructs an OutOfRangeError for a capped field.
func NewOutOfRangeError(field string, count, max int) error {
	return &OutOfRangeError{Field: field, Count: count, Max: max}
}
