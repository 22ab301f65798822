// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Package strategies implements the candidate generation strategies
// behind the adapt.Strategy interface.
//
// Four strategies cover the four brand facets:
//
//   - Visual: triggered by low brand consistency or by a
//     high-relevance trend that conflicts with the current visual kit.
//     Proposes primary color and logo variant updates.
//   - Messaging: triggered by low audience engagement or by
//     personality traits lacking tone guidelines. Proposes formality
//     and vocabulary updates.
//   - Content: triggered by low market alignment. Proposes a content
//     focus shift toward the most relevant trends.
//   - Audience: triggered by a stale or incomplete audience
//     descriptor. Proposes a targeting refresh.
//
// Every strategy is pure and deterministic. Candidate IDs encode the
// strategy, the affected attribute, and the trigger, so repeated
// generation over identical inputs produces identical output. Two
// strategies may target the same attribute with different proposed
// values; the conflict resolver in the adapt package settles those.
//
// Register strategies on the service at startup:
//
//	svc.RegisterStrategy(strategies.NewVisual())
//	svc.RegisterStrategy(strategies.NewMessaging())
//	svc.RegisterStrategy(strategies.NewContent())
//	svc.RegisterStrategy(strategies.NewAudience())
package strategies
