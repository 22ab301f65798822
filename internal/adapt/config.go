// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"fmt"
	"math"
	"time"
)

// Fixed score component weights. They sum to 1.0 and are not
// user-configurable; changing them invalidates historical comparisons.
const (
	// WeightConsistency is the brand_consistency weight.
	WeightConsistency = 0.40

	// WeightAlignment is the market_alignment weight.
	WeightAlignment = 0.35

	// WeightEngagement is the audience_engagement weight.
	WeightEngagement = 0.25
)

// Collection caps enforced at snapshot validation.
const (
	// MaxCoreValues caps BrandSnapshot.CoreValues.
	MaxCoreValues = 10

	// MaxLogoVariants caps VisualKit.LogoVariants.
	MaxLogoVariants = 10

	// MaxVoiceVariants caps VoiceProfile.Variants.
	MaxVoiceVariants = 5
)

// AlertThreshold is the score below which an alert is raised.
const AlertThreshold = 60

// StableDelta is the maximum absolute score movement still reported as
// a stable trend.
const StableDelta = 2

// Personalization multiplier bounds and adjustment factors.
const (
	// MultiplierMin is the floor for per-type multipliers.
	MultiplierMin = 0.1

	// MultiplierMax is the ceiling for per-type multipliers.
	MultiplierMax = 2.0

	// AcceptFactor scales a multiplier up on accept feedback.
	AcceptFactor = 1.1

	// RejectFactor scales a multiplier down on reject feedback.
	RejectFactor = 0.9
)

// Config holds the tunable thresholds of the adaptation core. The
// component weights and multiplier bounds are deliberately excluded;
// they are fixed constants above.
type Config struct {
	// VisualConsistencyThreshold triggers visual candidates when
	// brand_consistency falls below it.
	VisualConsistencyThreshold float64 `koanf:"visual_consistency_threshold" json:"visual_consistency_threshold"`

	// HighRelevanceThreshold marks a trend signal as high-relevance
	// for the visual strategy's trend trigger.
	HighRelevanceThreshold float64 `koanf:"high_relevance_threshold" json:"high_relevance_threshold"`

	// MessagingEngagementThreshold triggers messaging candidates when
	// audience_engagement falls below it.
	MessagingEngagementThreshold float64 `koanf:"messaging_engagement_threshold" json:"messaging_engagement_threshold"`

	// ContentAlignmentThreshold triggers content candidates when
	// market_alignment falls below it.
	ContentAlignmentThreshold float64 `koanf:"content_alignment_threshold" json:"content_alignment_threshold"`

	// AudienceStaleness is how old an audience descriptor may be
	// before the audience strategy proposes a refresh. It also bounds
	// full freshness in the engagement component.
	AudienceStaleness time.Duration `koanf:"audience_staleness" json:"audience_staleness"`

	// FreshnessFloor is the minimum freshness factor applied to the
	// engagement component regardless of staleness.
	FreshnessFloor float64 `koanf:"freshness_floor" json:"freshness_floor"`

	// ImpactBase is the baseline estimated impact a triggered
	// candidate starts from before the gap bonus.
	ImpactBase float64 `koanf:"impact_base" json:"impact_base"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		VisualConsistencyThreshold:   70,
		HighRelevanceThreshold:       75,
		MessagingEngagementThreshold: 60,
		ContentAlignmentThreshold:    55,
		AudienceStaleness:            90 * 24 * time.Hour,
		FreshnessFloor:               0.25,
		ImpactBase:                   40,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"visual_consistency_threshold":   c.VisualConsistencyThreshold,
		"high_relevance_threshold":       c.HighRelevanceThreshold,
		"messaging_engagement_threshold": c.MessagingEngagementThreshold,
		"content_alignment_threshold":    c.ContentAlignmentThreshold,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: %s must be in [0,100], got %v", ErrInvalidInput, name, v)
		}
	}
	if c.AudienceStaleness <= 0 {
		return fmt.Errorf("%w: audience_staleness must be positive", ErrInvalidInput)
	}
	if c.FreshnessFloor < 0 || c.FreshnessFloor > 1 {
		return fmt.Errorf("%w: freshness_floor must be in [0,1], got %v", ErrInvalidInput, c.FreshnessFloor)
	}
	if c.ImpactBase < 0 || c.ImpactBase > 100 {
		return fmt.Errorf("%w: impact_base must be in [0,100], got %v", ErrInvalidInput, c.ImpactBase)
	}
	return nil
}

// ImpactFor computes the estimated impact for a triggered candidate
// from the gap between a threshold and the observed value. Impact is
// base + gap, capped at 100 and never below zero.
func (c Config) ImpactFor(threshold, observed float64) float64 {
	gap := threshold - observed
	if gap < 0 {
		gap = 0
	}
	return math.Min(100, c.ImpactBase+gap)
}

// ValidateSnapshot enforces required fields and the collection caps.
// Missing facets (nil Visual, Voice, or Audience) are not errors; the
// score engine annotates them instead.
func ValidateSnapshot(snap *BrandSnapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrInvalidInput)
	}
	if snap.BrandID == "" {
		return fmt.Errorf("%w: brand_id is required", ErrInvalidInput)
	}
	if n := len(snap.CoreValues); n > MaxCoreValues {
		return NewOutOfRangeError("core_values", n, MaxCoreValues)
	}
	if snap.Visual != nil {
		if n := len(snap.Visual.LogoVariants); n > MaxLogoVariants {
			return NewOutOfRangeError("logo_variants", n, MaxLogoVariants)
		}
	}
	if snap.Voice != nil {
		if n := len(snap.Voice.Variants); n > MaxVoiceVariants {
			return NewOutOfRangeError("voice_variants", n, MaxVoiceVariants)
		}
	}
	for i, sig := range snap.TrendSignals {
		if sig.Name == "" {
			return fmt.Errorf("%w: trend_signals[%d].name is required", ErrInvalidInput, i)
		}
		if sig.Relevance < 0 || sig.Relevance > 100 {
			return fmt.Errorf("%w: trend_signals[%d].relevance must be in [0,100], got %v",
				ErrInvalidInput, i, sig.Relevance)
		}
	}
	return nil
}
