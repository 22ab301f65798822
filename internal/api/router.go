// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Package api exposes the adaptation service over HTTP. Responses use
// a standard envelope with machine-readable error codes; middleware
// adds request IDs, access logs, Prometheus instrumentation, CORS,
// and per-client rate limiting.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/config"
)

// NewRouter assembles the chi router for the service.
func NewRouter(cfg config.APIConfig, h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(RequestID)
	r.Use(chimw.Recoverer)
	r.Use(AccessLog)
	r.Use(Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		MaxAge:         300,
	}))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/brands/{brandID}", func(r chi.Router) {
			r.Put("/snapshot", h.PutSnapshot)
			r.Get("/score", h.GetScore)
			r.Get("/score/history", h.GetScoreHistory)
			r.Get("/recommendations", h.GetRecommendations)
			r.Post("/feedback", h.PostFeedback)
			r.Get("/feedback", h.GetFeedbackHistory)
		})
		r.Post("/recommendations/{recommendationID}/implement", h.PostImplement)

		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}
