// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v, want info/json", cfg.Log)
	}
	if cfg.Adapt.VisualConsistencyThreshold != 70 {
		t.Errorf("visual threshold = %v, want 70", cfg.Adapt.VisualConsistencyThreshold)
	}
	if cfg.Adapt.AudienceStaleness != 90*24*time.Hour {
		t.Errorf("staleness = %v, want 2160h", cfg.Adapt.AudienceStaleness)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9191
log:
  level: debug
adapt:
  content_alignment_threshold: 50
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("port = %d, want 9191 from file", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %s, want debug from file", cfg.Log.Level)
	}
	if cfg.Adapt.ContentAlignmentThreshold != 50 {
		t.Errorf("content threshold = %v, want 50 from file", cfg.Adapt.ContentAlignmentThreshold)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %s, want default", cfg.Server.Host)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("BC_SERVER_PORT", "7070")
	t.Setenv("BC_LOG_FORMAT", "console")
	t.Setenv("BC_ADAPT_IMPACT_BASE", "35")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("format = %s, want console", cfg.Log.Format)
	}
	if cfg.Adapt.ImpactBase != 35 {
		t.Errorf("impact base = %v, want 35", cfg.Adapt.ImpactBase)
	}
}

func TestLoadValidates(t *testing.T) {
	t.Setenv("BC_SERVER_PORT", "99999")
	if _, err := Load(""); err == nil {
		t.Error("Load accepted an out-of-range port")
	}
}

func TestLoadMissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want defaults with absent file", cfg.Server.Port)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"no store path", func(c *Config) { c.Store.Path = "" }, true},
		{"in-memory without path ok", func(c *Config) { c.Store.Path = ""; c.Store.InMemory = true }, false},
		{"negative rate limit", func(c *Config) { c.API.RateLimitPerMinute = -1 }, true},
		{"bad adapt threshold", func(c *Config) { c.Adapt.ImpactBase = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
