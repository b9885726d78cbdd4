// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

// Package config holds all application configuration loaded from defaults,
// an optional YAML config file, and environment variables, in that order of
// precedence (env wins).
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("failed to load config")
//	}
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080
	Port int `koanf:"port"`

	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds response writes.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// APIConfig configures API behavior.
type APIConfig struct {
	// DefaultLimit is the default number of items returned by list endpoints.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the limit query parameter.
	MaxLimit int `koanf:"max_limit"`

	// RequestTimeout bounds a single recommendation request end to end.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// RateLimit is the per-IP request budget per minute. Zero disables.
	RateLimit int `koanf:"rate_limit"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// RecommendConfig configures the recommendation core.
// The weight split and cold-start threshold are tuning knobs carried from
// operations, not derived values; Validate only range-checks them.
type RecommendConfig struct {
	// CollaborativeWeight is the hybrid blend weight for collaborative scores.
	CollaborativeWeight float64 `koanf:"collaborative_weight"`

	// ContentWeight is the hybrid blend weight for content scores.
	ContentWeight float64 `koanf:"content_weight"`

	// ColdStartThreshold is the interaction count below which the blender
	// uses the content-only path.
	ColdStartThreshold int `koanf:"cold_start_threshold"`

	// NeighborCount is the number of most-similar users considered by the
	// collaborative engine.
	NeighborCount int `koanf:"neighbor_count"`

	// VocabularySize caps the featurizer's term vocabulary.
	VocabularySize int `koanf:"vocabulary_size"`

	// TrendingWindow is the lookback window for trending counts.
	TrendingWindow time.Duration `koanf:"trending_window"`

	// RefreshPerMinute throttles externally triggered snapshot rebuilds.
	RefreshPerMinute int `koanf:"refresh_per_minute"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. These are applied
// first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			DefaultLimit:   20,
			MaxLimit:       100,
			RequestTimeout: 10 * time.Second,
			RateLimit:      300,
			CORSOrigins:    []string{"*"},
		},
		Recommend: RecommendConfig{
			CollaborativeWeight: 0.7,
			ContentWeight:       0.3,
			ColdStartThreshold:  5,
			NeighborCount:       20,
			VocabularySize:      200,
			TrendingWindow:      7 * 24 * time.Hour,
			RefreshPerMinute:    2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.API.DefaultLimit < 1 {
		return fmt.Errorf("api.default_limit must be positive, got %d", c.API.DefaultLimit)
	}
	if c.API.MaxLimit < c.API.DefaultLimit {
		return fmt.Errorf("api.max_limit (%d) must be >= api.default_limit (%d)", c.API.MaxLimit, c.API.DefaultLimit)
	}
	if c.Recommend.CollaborativeWeight < 0 || c.Recommend.CollaborativeWeight > 1 {
		return fmt.Errorf("recommend.collaborative_weight must be in [0,1], got %f", c.Recommend.CollaborativeWeight)
	}
	if c.Recommend.ContentWeight < 0 || c.Recommend.ContentWeight > 1 {
		return fmt.Errorf("recommend.content_weight must be in [0,1], got %f", c.Recommend.ContentWeight)
	}
	sum := c.Recommend.CollaborativeWeight + c.Recommend.ContentWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("recommend blend weights must sum to 1.0, got %.3f", sum)
	}
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("api.request_timeout must be positive, got %s", c.API.RequestTimeout)
	}
	if c.Recommend.ColdStartThreshold < 0 {
		return fmt.Errorf("recommend.cold_start_threshold must be non-negative, got %d", c.Recommend.ColdStartThreshold)
	}
	if c.Recommend.NeighborCount < 1 {
		return fmt.Errorf("recommend.neighbor_count must be positive, got %d", c.Recommend.NeighborCount)
	}
	if c.Recommend.VocabularySize < 1 {
		return fmt.Errorf("recommend.vocabulary_size must be positive, got %d", c.Recommend.VocabularySize)
	}
	if c.Recommend.TrendingWindow <= 0 {
		return fmt.Errorf("recommend.trending_window must be positive, got %s", c.Recommend.TrendingWindow)
	}
	if c.Recommend.RefreshPerMinute < 1 {
		return fmt.Errorf("recommend.refresh_per_minute must be positive, got %d", c.Recommend.RefreshPerMinute)
	}
	return nil
}
