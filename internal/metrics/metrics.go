// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Package metrics defines the Prometheus instrumentation for the
// service. All collectors are registered with the default registry via
// promauto and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "brand_chameleon"

var (
	// ScoreComputations counts adaptation score computations by trend
	// direction.
	ScoreComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "computations_total",
			Help:      "Total adaptation score computations by trend direction.",
		},
		[]string{"trend"},
	)

	// ScoreAlerts counts computations whose value fell below the
	// alert threshold.
	ScoreAlerts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "alerts_total",
			Help:      "Total adaptation scores below the alert threshold.",
		},
	)

	// ScoreComputeDuration observes score computation latency.
	ScoreComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "compute_duration_seconds",
			Help:      "Adaptation score computation duration.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// CandidatesGenerated counts candidates produced per strategy.
	CandidatesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recommend",
			Name:      "candidates_generated_total",
			Help:      "Total candidates generated by strategy.",
		},
		[]string{"strategy"},
	)

	// ConflictsDropped counts candidates removed by conflict
	// resolution.
	ConflictsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recommend",
			Name:      "conflicts_dropped_total",
			Help:      "Total candidates dropped during conflict resolution.",
		},
	)

	// RecommendationsServed counts recommendations returned to
	// callers.
	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recommend",
			Name:      "served_total",
			Help:      "Total recommendations returned to callers.",
		},
	)

	// FeedbackEvents counts feedback events by action.
	FeedbackEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feedback",
			Name:      "events_total",
			Help:      "Total feedback events by action.",
		},
		[]string{"action"},
	)

	// APIRequests counts HTTP requests by method, route, and status.
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route, and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// APIRequestDuration observes HTTP request latency by route.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
