// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package adapt

import (
	"time"
)

// Component names for the three fixed score components.
const (
	ComponentBrandConsistency   = "brand_consistency"
	ComponentMarketAlignment    = "market_alignment"
	ComponentAudienceEngagement = "audience_engagement"
)

// CandidateType identifies the strategy family a candidate originates from.
type CandidateType string

const (
	// TypeVisual covers visual-identity updates (colors, logo variants).
	TypeVisual CandidateType = "visual"
	// TypeMessaging covers voice and messaging adjustments.
	TypeMessaging CandidateType = "messaging"
	// TypeContent covers content-strategy changes.
	TypeContent CandidateType = "content"
	// TypeAudience covers audience-targeting changes.
	TypeAudience CandidateType = "audience"
)

// PriorityBand classifies a candidate by estimated impact.
// Higher values sort first when ranking.
type PriorityBand int

const (
	// PriorityLow is for candidates with impact below 35.
	PriorityLow PriorityBand = iota
	// PriorityMedium is for candidates with impact in [35, 60).
	PriorityMedium
	// PriorityHigh is for candidates with impact in [60, 80).
	PriorityHigh
	// PriorityCritical is for candidates with impact of 80 or more.
	PriorityCritical
)

// String returns a human-readable name for the priority band.
func (p PriorityBand) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON output carries
// the band name rather than its ordinal.
func (p PriorityBand) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PriorityBand) UnmarshalText(text []byte) error {
	switch string(text) {
	case "critical":
		*p = PriorityCritical
	case "high":
		*p = PriorityHigh
	case "medium":
		*p = PriorityMedium
	default:
		*p = PriorityLow
	}
	return nil
}

// PriorityFor maps an estimated impact to its priority band using the
// fixed thresholds 80/60/35.
func PriorityFor(impact float64) PriorityBand {
	switch {
	case impact >= 80:
		return PriorityCritical
	case impact >= 60:
		return PriorityHigh
	case impact >= 35:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// TrendDirection describes score movement versus the previous stored score.
type TrendDirection string

const (
	// TrendImproving means the score rose by more than 2 points.
	TrendImproving TrendDirection = "improving"
	// TrendStable means the score moved by at most 2 points,
	// or no prior score exists.
	TrendStable TrendDirection = "stable"
	// TrendDeclining means the score fell by more than 2 points.
	TrendDeclining TrendDirection = "declining"
)

// Status tracks the lifecycle of a recommendation.
type Status string

const (
	// StatusPending is the initial state of every recommendation.
	StatusPending Status = "pending"
	// StatusAccepted is set when the user accepts the recommendation.
	StatusAccepted Status = "accepted"
	// StatusRejected is set when the user rejects the recommendation.
	StatusRejected Status = "rejected"
	// StatusImplemented is set when the recommendation has been applied.
	StatusImplemented Status = "implemented"
)

// FeedbackAction classifies a user action on a recommendation.
type FeedbackAction string

const (
	// ActionAccept indicates the user accepted the recommendation.
	ActionAccept FeedbackAction = "accept"
	// ActionReject indicates the user rejected the recommendation.
	ActionReject FeedbackAction = "reject"
	// ActionModify indicates the user applied a modified version.
	// Recorded for audit; it never changes personalization weights.
	ActionModify FeedbackAction = "modify"
)

// Valid reports whether the action is one of accept, reject, or modify.
func (a FeedbackAction) Valid() bool {
	switch a {
	case ActionAccept, ActionReject, ActionModify:
		return true
	default:
		return false
	}
}

// TrendSignal is a single market trend judged applicable to the brand
// by the upstream signal store. Relevance is 0-100.
type TrendSignal struct {
	// Name identifies the trend (e.g., "muted earth tones").
	Name string `json:"name" validate:"required"`

	// Relevance is how strongly the trend applies to the brand (0-100).
	Relevance float64 `json:"relevance" validate:"min=0,max=100"`

	// VisualMismatch marks trends whose look conflicts with the
	// brand's current visual kit.
	VisualMismatch bool `json:"visual_mismatch,omitempty"`
}

// VisualKit describes the brand's current visual identity.
type VisualKit struct {
	// PrimaryColor is the dominant brand color (hex or named).
	PrimaryColor string `json:"primary_color"`

	// SecondaryColors lists supporting palette colors.
	SecondaryColors []string `json:"secondary_colors,omitempty"`

	// ColorRules maps personality traits to color usage rules
	// (e.g., "bold" -> "use primary at full saturation for CTAs").
	ColorRules map[string]string `json:"color_rules,omitempty"`

	// LogoVariants lists the registered logo variations (max 10).
	LogoVariants []string `json:"logo_variants,omitempty" validate:"max=10"`
}

// VoiceProfile describes the brand's current voice and messaging assets.
type VoiceProfile struct {
	// ToneGuidelines maps personality traits to tone guidance
	// (e.g., "playful" -> "light humor, contractions allowed").
	ToneGuidelines map[string]string `json:"tone_guidelines,omitempty"`

	// Formality is the declared register (e.g., "casual", "formal").
	Formality string `json:"formality,omitempty"`

	// Vocabulary lists preferred words and phrases.
	Vocabulary []string `json:"vocabulary,omitempty"`

	// Variants lists generated voice variations (max 5).
	Variants []string `json:"variants,omitempty" validate:"max=5"`
}

// AudienceDescriptor describes who the brand targets.
type AudienceDescriptor struct {
	// Segments lists named audience segments.
	Segments []string `json:"segments,omitempty"`

	// AgeRange is the target age bracket (e.g., "25-40").
	AgeRange string `json:"age_range,omitempty"`

	// Interests lists audience interest keywords.
	Interests []string `json:"interests,omitempty"`

	// Channels lists where the audience is reached.
	Channels []string `json:"channels,omitempty"`

	// UpdatedAt is when the descriptor was last refreshed.
	// Staleness feeds the audience_engagement component.
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandSnapshot is an immutable view of a brand at score-computation
// time. It is constructed fresh per request by the signal store and is
// consumed read-only by the score engine and candidate strategies.
type BrandSnapshot struct {
	// BrandID identifies the brand.
	BrandID string `json:"brand_id" validate:"required"`

	// CoreValues lists declared brand values (max 10).
	CoreValues []string `json:"core_values,omitempty" validate:"max=10"`

	// PersonalityTraits lists declared personality traits.
	PersonalityTraits []string `json:"personality_traits,omitempty"`

	// Mission is the brand mission statement.
	Mission string `json:"mission,omitempty"`

	// Visual is the current visual kit descriptor.
	Visual *VisualKit `json:"visual,omitempty"`

	// Voice is the current voice descriptor.
	Voice *VoiceProfile `json:"voice,omitempty"`

	// Audience is the current audience descriptor.
	Audience *AudienceDescriptor `json:"audience,omitempty"`

	// Industry is the brand's industry tag.
	Industry string `json:"industry,omitempty"`

	// TrendSignals holds trends pre-filtered for applicability by the
	// signal store. Only applicable trends appear here.
	TrendSignals []TrendSignal `json:"trend_signals,omitempty" validate:"dive"`

	// TakenAt is when the snapshot was assembled.
	TakenAt time.Time `json:"taken_at"`
}

// Clone returns a deep copy of the snapshot. Stores hold clones so
// later caller mutations cannot alias the stored view.
func (s *BrandSnapshot) Clone() *BrandSnapshot {
	if s == nil {
		return nil
	}
	c := *s
	c.CoreValues = cloneStrings(s.CoreValues)
	c.PersonalityTraits = cloneStrings(s.PersonalityTraits)
	if s.Visual != nil {
		v := *s.Visual
		v.SecondaryColors = cloneStrings(s.Visual.SecondaryColors)
		v.ColorRules = cloneStringMap(s.Visual.ColorRules)
		v.LogoVariants = cloneStrings(s.Visual.LogoVariants)
		c.Visual = &v
	}
	if s.Voice != nil {
		v := *s.Voice
		v.ToneGuidelines = cloneStringMap(s.Voice.ToneGuidelines)
		v.Vocabulary = cloneStrings(s.Voice.Vocabulary)
		v.Variants = cloneStrings(s.Voice.Variants)
		c.Voice = &v
	}
	if s.Audience != nil {
		a := *s.Audience
		a.Segments = cloneStrings(s.Audience.Segments)
		a.Interests = cloneStrings(s.Audience.Interests)
		a.Channels = cloneStrings(s.Audience.Channels)
		c.Audience = &a
	}
	if s.TrendSignals != nil {
		c.TrendSignals = make([]TrendSignal, len(s.TrendSignals))
		copy(c.TrendSignals, s.TrendSignals)
	}
	return &c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ScoreComponent is one weighted factor of an adaptation score.
type ScoreComponent struct {
	// Name is one of brand_consistency, market_alignment,
	// audience_engagement.
	Name string `json:"name"`

	// RawValue is the unweighted component value (0-100).
	RawValue float64 `json:"raw_value"`

	// Weight is the fixed contribution weight. The three component
	// weights sum to 1.0.
	Weight float64 `json:"weight"`

	// ContributingFactors explains what drove the raw value.
	ContributingFactors []string `json:"contributing_factors,omitempty"`
}

// AdaptationScore is the 0-100 composite metric for a brand at a point
// in time. Instances are append-only history; they are never mutated
// after creation.
type AdaptationScore struct {
	// BrandID identifies the brand.
	BrandID string `json:"brand_id"`

	// Value is the rounded, clamped weighted sum of the components.
	Value int `json:"value"`

	// Components holds exactly three weighted components.
	Components []ScoreComponent `json:"components"`

	// Trend compares this score against the latest prior stored score.
	Trend TrendDirection `json:"trend"`

	// ComputedAt is when the score was computed. Together with BrandID
	// it keys the append-only history.
	ComputedAt time.Time `json:"computed_at"`

	// DataCompleteness lists snapshot facets that were missing and
	// contributed zero to their component. Empty when all facets were
	// present.
	DataCompleteness []string `json:"data_completeness,omitempty"`
}

// Component returns the named component, or nil if absent.
func (s *AdaptationScore) Component(name string) *ScoreComponent {
	for i := range s.Components {
		if s.Components[i].Name == name {
			return &s.Components[i]
		}
	}
	return nil
}

// ScoreBreakdown is the per-component view the candidate strategies
// consume. Values are raw (unweighted) component values, 0-100.
type ScoreBreakdown struct {
	// Consistency is the brand_consistency raw value.
	Consistency float64 `json:"consistency"`

	// Alignment is the market_alignment raw value.
	Alignment float64 `json:"alignment"`

	// Engagement is the audience_engagement raw value.
	Engagement float64 `json:"engagement"`
}

// BreakdownOf extracts a ScoreBreakdown from a computed score.
func BreakdownOf(score *AdaptationScore) ScoreBreakdown {
	b := ScoreBreakdown{}
	if c := score.Component(ComponentBrandConsistency); c != nil {
		b.Consistency = c.RawValue
	}
	if c := score.Component(ComponentMarketAlignment); c != nil {
		b.Alignment = c.RawValue
	}
	if c := score.Component(ComponentAudienceEngagement); c != nil {
		b.Engagement = c.RawValue
	}
	return b
}

// Candidate is an unresolved, unranked recommendation proposal produced
// by a strategy. IDs are deterministic (strategy + trigger + attribute),
// never random, so repeated generation over identical inputs yields
// identical candidates.
type Candidate struct {
	// ID uniquely identifies the candidate within a generation cycle.
	ID string `json:"id"`

	// Type is the originating strategy family.
	Type CandidateType `json:"type"`

	// Title is a short human-readable summary.
	Title string `json:"title"`

	// Rationale explains the triggering condition. Always non-empty.
	Rationale string `json:"rationale"`

	// EstimatedImpact is the projected score improvement (0-100).
	EstimatedImpact float64 `json:"estimated_impact"`

	// Priority is derived from EstimatedImpact via fixed bands.
	Priority PriorityBand `json:"priority"`

	// AffectedAttribute is the brand facet the candidate targets
	// (e.g., "primary_color"). It is the unit of conflict detection.
	AffectedAttribute string `json:"affected_attribute"`

	// ProposedValue is the target value for the affected attribute.
	// Two candidates for the same attribute conflict when their
	// proposed values differ.
	ProposedValue string `json:"proposed_value"`

	// ImplementationSteps lists concrete steps to apply the change.
	ImplementationSteps []string `json:"implementation_steps,omitempty"`
}

// Recommendation is a candidate promoted to the final ranked list.
type Recommendation struct {
	Candidate

	// BrandID identifies the brand the recommendation belongs to.
	BrandID string `json:"brand_id"`

	// Status tracks the recommendation lifecycle. Only Status changes
	// after creation.
	Status Status `json:"status"`

	// EffectiveScore is EstimatedImpact scaled by the brand's
	// personalization multiplier for the candidate type.
	EffectiveScore float64 `json:"effective_score"`

	// CreatedAt is when the recommendation was first produced.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the status last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedbackEvent records a user action on a recommendation. Events are
// append-only; they are never mutated or deleted.
type FeedbackEvent struct {
	// ID uniquely identifies the event.
	ID string `json:"id"`

	// BrandID identifies the brand.
	BrandID string `json:"brand_id"`

	// RecommendationID references the recommendation acted on.
	RecommendationID string `json:"recommendation_id"`

	// RecommendationType is the type of the referenced recommendation,
	// denormalized so weight updates need no extra lookup.
	RecommendationType CandidateType `json:"recommendation_type"`

	// Action is the user action taken.
	Action FeedbackAction `json:"action"`

	// Timestamp is when the event was recorded. Together with BrandID
	// it keys the append-only feedback log.
	Timestamp time.Time `json:"timestamp"`
}

// PersonalizationWeights holds the per-brand, per-type multipliers that
// bias ranking. Multipliers stay within [0.1, 2.0]; unseen types
// default to 1.0.
type PersonalizationWeights struct {
	// BrandID identifies the brand the weights belong to.
	BrandID string `json:"brand_id"`

	// PerType maps candidate type to its multiplier.
	PerType map[CandidateType]float64 `json:"per_type"`

	// UpdatedAt is when the weights last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPersonalizationWeights returns default weights for a brand.
func NewPersonalizationWeights(brandID string) *PersonalizationWeights {
	return &PersonalizationWeights{
		BrandID: brandID,
		PerType: make(map[CandidateType]float64),
	}
}

// Multiplier returns the multiplier for a type, defaulting to 1.0.
func (w *PersonalizationWeights) Multiplier(t CandidateType) float64 {
	if w == nil || w.PerType == nil {
		return 1.0
	}
	if m, ok := w.PerType[t]; ok {
		return m
	}
	return 1.0
}

// Clone returns a deep copy so callers can read weights without racing
// concurrent updates.
func (w *PersonalizationWeights) Clone() *PersonalizationWeights {
	if w == nil {
		return nil
	}
	c := &PersonalizationWeights{
		BrandID:   w.BrandID,
		PerType:   make(map[CandidateType]float64, len(w.PerType)),
		UpdatedAt: w.UpdatedAt,
	}
	for t, m := range w.PerType {
		c.PerType[t] = m
	}
	return c
}
