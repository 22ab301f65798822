// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables this service reads.
const envPrefix = "BC_"

// envMap maps environment variables to config paths. Explicit mapping
// avoids ambiguity between underscores in variable names and
// underscores in field names.
var envMap = map[string]string{
	"BC_SERVER_HOST":                    "server.host",
	"BC_SERVER_PORT":                    "server.port",
	"BC_SERVER_READ_TIMEOUT":            "server.read_timeout",
	"BC_SERVER_WRITE_TIMEOUT":           "server.write_timeout",
	"BC_SERVER_SHUTDOWN_TIMEOUT":        "server.shutdown_timeout",
	"BC_LOG_LEVEL":                      "log.level",
	"BC_LOG_FORMAT":                     "log.format",
	"BC_STORE_PATH":                     "store.path",
	"BC_STORE_IN_MEMORY":                "store.in_memory",
	"BC_STORE_GC_INTERVAL":              "store.gc_interval",
	"BC_API_CORS_ALLOWED_ORIGINS":       "api.cors_allowed_origins",
	"BC_API_RATE_LIMIT_PER_MINUTE":      "api.rate_limit_per_minute",
	"BC_ADAPT_VISUAL_THRESHOLD":         "adapt.visual_consistency_threshold",
	"BC_ADAPT_HIGH_RELEVANCE_THRESHOLD": "adapt.high_relevance_threshold",
	"BC_ADAPT_MESSAGING_THRESHOLD":      "adapt.messaging_engagement_threshold",
	"BC_ADAPT_CONTENT_THRESHOLD":        "adapt.content_alignment_threshold",
	"BC_ADAPT_AUDIENCE_STALENESS":       "adapt.audience_staleness",
	"BC_ADAPT_FRESHNESS_FLOOR":          "adapt.freshness_floor",
	"BC_ADAPT_IMPACT_BASE":              "adapt.impact_base",
}

// Load assembles the configuration from defaults, an optional YAML
// file at path (skipped when path is empty or missing), and BC_*
// environment variables, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		return envMap[key]
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
