// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Package logging centralizes zerolog configuration. Packages obtain
// child loggers through WithComponent or Ctx instead of constructing
// their own, so level and format stay consistent process-wide.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls global logger behavior.
type Config struct {
	// Level is one of trace, debug, info, warn, error. Defaults to
	// info when empty or unrecognized.
	Level string `koanf:"level" json:"level"`

	// Format is json or console. Defaults to json.
	Format string `koanf:"format" json:"format"`
}

var (
	mu     sync.RWMutex
	global = newLogger(Config{}, os.Stderr)
)

// Init replaces the global logger from config. Call once at startup
// before any component loggers are created.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	global = newLogger(cfg, os.Stderr)
}

// InitWithWriter is Init with an explicit output writer. Used by
// tests to capture output.
func InitWithWriter(cfg Config, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	global = newLogger(cfg, w)
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)
	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Validate checks the config for unknown values. Unknown level or
// format would otherwise silently fall back to defaults.
func (c Config) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With returns a context builder on the global logger.
func With() zerolog.Context {
	return Logger().With()
}

// WithComponent returns a child logger tagged with a component field.
//
//	log := logging.WithComponent("store")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
