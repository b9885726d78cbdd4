// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.Recommend.CollaborativeWeight != 0.7 || cfg.Recommend.ContentWeight != 0.3 {
		t.Errorf("default blend weights = %v/%v, want 0.7/0.3",
			cfg.Recommend.CollaborativeWeight, cfg.Recommend.ContentWeight)
	}
	if cfg.Recommend.ColdStartThreshold != 5 {
		t.Errorf("default cold start threshold = %d, want 5", cfg.Recommend.ColdStartThreshold)
	}
	if cfg.Recommend.TrendingWindow != 7*24*time.Hour {
		t.Errorf("default trending window = %v, want 168h", cfg.Recommend.TrendingWindow)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"weights not summing to one", func(c *Config) { c.Recommend.CollaborativeWeight = 0.9 }},
		{"negative weight", func(c *Config) {
			c.Recommend.CollaborativeWeight = -0.2
			c.Recommend.ContentWeight = 1.2
		}},
		{"zero neighbor count", func(c *Config) { c.Recommend.NeighborCount = 0 }},
		{"zero vocabulary", func(c *Config) { c.Recommend.VocabularySize = 0 }},
		{"max limit below default", func(c *Config) { c.API.MaxLimit = 5 }},
		{"zero request timeout", func(c *Config) { c.API.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("NEXTREEL_SERVER_PORT", "9999")
	t.Setenv("NEXTREEL_RECOMMEND_COLD_START_THRESHOLD", "3")
	t.Setenv(ConfigPathEnvVar, "/nonexistent/ignore-files.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want env override 9999", cfg.Server.Port)
	}
	if cfg.Recommend.ColdStartThreshold != 3 {
		t.Errorf("cold start threshold = %d, want env override 3", cfg.Recommend.ColdStartThreshold)
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NEXTREEL_SERVER_PORT", "server.port"},
		{"NEXTREEL_API_DEFAULT_LIMIT", "api.default_limit"},
		{"NEXTREEL_RECOMMEND_COLLABORATIVE_WEIGHT", "recommend.collaborative_weight"},
		{"NEXTREEL_LOGGING_LEVEL", "logging.level"},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
