// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Package config loads layered application configuration: struct
// defaults, then an optional YAML file, then environment variables.
// Later layers override earlier ones.
package config

import (
	"fmt"
	"time"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/logging"
)

// Config is the full application configuration tree.
type Config struct {
	Server ServerConfig   `koanf:"server" json:"server"`
	Log    logging.Config `koanf:"log" json:"log"`
	Store  StoreConfig    `koanf:"store" json:"store"`
	API    APIConfig      `koanf:"api" json:"api"`
	Adapt  adapt.Config   `koanf:"adapt" json:"adapt"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Host is the bind address.
	Host string `koanf:"host" json:"host"`

	// Port is the listen port.
	Port int `koanf:"port" json:"port"`

	// ReadTimeout bounds request read time.
	ReadTimeout time.Duration `koanf:"read_timeout" json:"read_timeout"`

	// WriteTimeout bounds response write time.
	WriteTimeout time.Duration `koanf:"write_timeout" json:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" json:"shutdown_timeout"`
}

// StoreConfig controls the embedded database.
type StoreConfig struct {
	// Path is the on-disk database directory. Ignored when InMemory
	// is set.
	Path string `koanf:"path" json:"path"`

	// InMemory runs the database without persistence. Development and
	// test use only.
	InMemory bool `koanf:"in_memory" json:"in_memory"`

	// GCInterval is how often value-log garbage collection runs.
	GCInterval time.Duration `koanf:"gc_interval" json:"gc_interval"`
}

// APIConfig controls HTTP middleware behavior.
type APIConfig struct {
	// CORSAllowedOrigins lists allowed CORS origins.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" json:"cors_allowed_origins"`

	// RateLimitPerMinute caps requests per client IP per minute.
	// Zero disables rate limiting.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute" json:"rate_limit_per_minute"`
}

// Default returns the built-in defaults, the base layer of Load.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: logging.Config{
			Level:  "info",
			Format: "json",
		},
		Store: StoreConfig{
			Path:       "./data",
			GCInterval: 10 * time.Minute,
		},
		API: APIConfig{
			CORSAllowedOrigins: []string{"*"},
			RateLimitPerMinute: 300,
		},
		Adapt: adapt.DefaultConfig(),
	}
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1,65535], got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required unless store.in_memory is set")
	}
	if c.API.RateLimitPerMinute < 0 {
		return fmt.Errorf("api.rate_limit_per_minute must not be negative")
	}
	if err := c.Adapt.Validate(); err != nil {
		return fmt.Errorf("adapt: %w", err)
	}
	return nil
}
