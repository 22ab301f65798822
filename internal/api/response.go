// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/logging"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/validation"
)

// Machine-readable error codes returned in the response envelope.
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeOutOfRange            = "OUT_OF_RANGE"
	CodeUnknownBrand          = "UNKNOWN_BRAND"
	CodeUnknownRecommendation = "UNKNOWN_RECOMMENDATION"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeInternal              = "INTERNAL_ERROR"
)

// APIResponse is the standard response envelope for every endpoint.
type APIResponse struct {
	// Success reports whether the request was handled.
	Success bool `json:"success"`

	// Data carries the payload on success.
	Data any `json:"data,omitempty"`

	// Error carries error detail on failure.
	Error *APIError `json:"error,omitempty"`

	// Meta carries request metadata.
	Meta *Meta `json:"meta"`
}

// APIError is the error payload of the envelope.
type APIError struct {
	// Code is a stable machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Details carries structured context such as field errors.
	Details any `json:"details,omitempty"`
}

// Meta is the metadata payload of the envelope.
type Meta struct {
	// RequestID echoes the request's correlation ID.
	RequestID string `json:"request_id,omitempty"`

	// Timestamp is when the response was produced.
	Timestamp time.Time `json:"timestamp"`
}

// ResponseWriter renders envelopes. One instance is shared by all
// handlers.
type ResponseWriter struct{}

// NewResponseWriter constructs a ResponseWriter.
func NewResponseWriter() *ResponseWriter {
	return &ResponseWriter{}
}

func (rw *ResponseWriter) write(w http.ResponseWriter, r *http.Request, status int, resp APIResponse) {
	resp.Meta = &Meta{
		RequestID: logging.RequestIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}

// Success writes a 200 envelope with data.
func (rw *ResponseWriter) Success(w http.ResponseWriter, r *http.Request, data any) {
	rw.write(w, r, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Created writes a 201 envelope with data.
func (rw *ResponseWriter) Created(w http.ResponseWriter, r *http.Request, data any) {
	rw.write(w, r, http.StatusCreated, APIResponse{Success: true, Data: data})
}

// Error writes an error envelope with an explicit status and code.
func (rw *ResponseWriter) Error(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	rw.write(w, r, status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Details: details},
	})
}

// DomainError maps a core error to its HTTP representation. Unmapped
// errors become 500 with a generic message; detail stays in the log.
func (rw *ResponseWriter) DomainError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validation.FieldErrors
	var oor *adapt.OutOfRangeError

	switch {
	case errors.As(err, &fieldErrs):
		rw.Error(w, r, http.StatusBadRequest, CodeValidationFailed, "request validation failed", fieldErrs)
	case errors.As(err, &oor):
		rw.Error(w, r, http.StatusBadRequest, CodeOutOfRange, oor.Error(), map[string]any{
			"field": oor.Field,
			"count": oor.Count,
			"max":   oor.Max,
		})
	case errors.Is(err, adapt.ErrOutOfRangeCollection):
		rw.Error(w, r, http.StatusBadRequest, CodeOutOfRange, err.Error(), nil)
	case errors.Is(err, adapt.ErrInvalidInput):
		rw.Error(w, r, http.StatusBadRequest, CodeInvalidInput, err.Error(), nil)
	case errors.Is(err, adapt.ErrUnknownBrand):
		rw.Error(w, r, http.StatusNotFound, CodeUnknownBrand, err.Error(), nil)
	case errors.Is(err, adapt.ErrUnknownRecommendation):
		rw.Error(w, r, http.StatusNotFound, CodeUnknownRecommendation, err.Error(), nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Unhandled error")
		rw.Error(w, r, http.StatusInternalServerError, CodeInternal, "internal error", nil)
	}
}
