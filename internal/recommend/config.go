// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"fmt"
	"time"
)

// Config holds the tunable parameters of the recommendation core.
type Config struct {
	// CollaborativeWeight is the hybrid blend weight for collaborative
	// scores. Must sum to 1.0 with ContentWeight.
	CollaborativeWeight float64

	// ContentWeight is the hybrid blend weight for content scores.
	ContentWeight float64

	// ColdStartThreshold is the minimum interaction count (movie watches
	// plus episode watches) required before collaborative signal is
	// trusted. Users below it get the content-only path.
	ColdStartThreshold int

	// NeighborCount is the number of most-similar users consulted for
	// collaborative predictions.
	NeighborCount int

	// VocabularySize caps the content vector space's term vocabulary.
	VocabularySize int

	// TrendingWindow is the lookback window for trending watch counts.
	TrendingWindow time.Duration

	// RefreshPerMinute caps explicit snapshot rebuild requests.
	RefreshPerMinute int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		CollaborativeWeight: 0.7,
		ContentWeight:       0.3,
		ColdStartThreshold:  5,
		NeighborCount:       20,
		VocabularySize:      200,
		TrendingWindow:      7 * 24 * time.Hour,
		RefreshPerMinute:    2,
	}
}

// Clone returns a copy of the configuration. All fields are value types,
// so a shallow copy is a deep copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.CollaborativeWeight < 0 || c.ContentWeight < 0 {
		return fmt.Errorf("blend weights must be non-negative, got %.2f/%.2f",
			c.CollaborativeWeight, c.ContentWeight)
	}
	sum := c.CollaborativeWeight + c.ContentWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("blend weights must sum to 1.0, got %.3f", sum)
	}
	if c.ColdStartThreshold < 0 {
		return fmt.Errorf("cold start threshold must be non-negative, got %d", c.ColdStartThreshold)
	}
	if c.NeighborCount < 1 {
		return fmt.Errorf("neighbor count must be positive, got %d", c.NeighborCount)
	}
	if c.VocabularySize < 1 {
		return fmt.Errorf("vocabulary size must be positive, got %d", c.VocabularySize)
	}
	if c.TrendingWindow <= 0 {
		return fmt.Errorf("trending window must be positive, got %s", c.TrendingWindow)
	}
	if c.RefreshPerMinute < 1 {
		return fmt.Errorf("refresh rate must be positive, got %d", c.RefreshPerMinute)
	}
	return nil
}
