// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"math"
	"sync"
)

// Personalizer applies feedback actions to per-brand weights. Updates
// for the same brand are serialized through striped locks so
// concurrent feedback never loses an adjustment; different brands
// proceed in parallel.
type Personalizer struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPersonalizer constructs a Personalizer.
func NewPersonalizer() *Personalizer {
	return &Personalizer{locks: make(map[string]*sync.Mutex)}
}

// brandLock returns the lock for a brand, creating it on first use.
func (p *Personalizer) brandLock(brandID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[brandID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[brandID] = l
	}
	return l
}

// WithBrand runs fn while holding the brand's lock. The service uses
// this to make read-modify-write weight updates atomic per brand.
func (p *Personalizer) WithBrand(brandID string, fn func() error) error {
	l := p.brandLock(brandID)
	l.Lock()
	defer l.Unlock()
	return fn()
}

// Adjust returns the multiplier after applying an action. Accept
// scales up by AcceptFactor capped at MultiplierMax; reject scales
// down by RejectFactor floored at MultiplierMin; modify leaves the
// multiplier unchanged.
func Adjust(current float64, action FeedbackAction) float64 {
	switch action {
	case ActionAccept:
		return math.Min(MultiplierMax, current*AcceptFactor)
	case ActionReject:
		return math.Max(MultiplierMin, current*RejectFactor)
	default:
		return current
	}
}

// ApplyFeedback updates the weights for the event's recommendation
// type in place and stamps UpdatedAt from the event.
func ApplyFeedback(weights *PersonalizationWeights, event *FeedbackEvent) {
	if weights.PerType == nil {
		weights.PerType = make(map[CandidateType]float64)
	}
	current := weights.Multiplier(event.RecommendationType)
	next := Adjust(current, event.Action)
	if next != current || event.Action != ActionModify {
		weights.PerType[event.RecommendationType] = next
	}
	weights.UpdatedAt = event.Timestamp
}
