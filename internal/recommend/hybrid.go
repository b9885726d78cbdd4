// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"context"
	"time"

	"github.com/nextreel/nextreel/internal/catalog"
	"github.com/nextreel/nextreel/internal/metrics"
)

// RecommendUnified produces personalized recommendations partitioned into
// movie and series lists, each truncated to limit.
//
// Users below the cold-start threshold get the content-only path;
// everyone else gets the weighted collaborative + content blend.
func (s *Service) RecommendUnified(ctx context.Context, userID, limit int) (*RecommendationSet, error) {
	start := time.Now()

	snap, scored, effective, reason, err := s.scoreForUser(ctx, userID, limit*2, StrategyAuto)
	if err != nil {
		return nil, err
	}

	set := &RecommendationSet{
		Movies:          []Recommendation{},
		Series:          []Recommendation{},
		Strategy:        effective,
		SnapshotVersion: snap.version,
	}
	for _, si := range scored {
		if si.Key.Kind == catalog.KindMovie && len(set.Movies) >= limit {
			continue
		}
		if si.Key.Kind == catalog.KindSeries && len(set.Series) >= limit {
			continue
		}
		rec, ok := s.hydrate(si.Key, si.Score, reason)
		if !ok {
			continue
		}
		switch si.Key.Kind {
		case catalog.KindMovie:
			set.Movies = append(set.Movies, rec)
		case catalog.KindSeries:
			set.Series = append(set.Series, rec)
		}
		if len(set.Movies) >= limit && len(set.Series) >= limit {
			break
		}
	}

	empty := len(set.Movies) == 0 && len(set.Series) == 0
	metrics.RecordRecommendation("unified", string(effective), empty, time.Since(start))
	return set, nil
}

// RecommendForUser produces a single mixed ranked list across both
// namespaces, truncated to limit. With StrategyAuto the path is chosen
// by interaction volume; the other strategies force a specific path.
func (s *Service) RecommendForUser(ctx context.Context, userID, limit int, strategy Strategy) ([]Recommendation, error) {
	start := time.Now()

	_, scored, effective, reason, err := s.scoreForUser(ctx, userID, limit*2, strategy)
	if err != nil {
		return nil, err
	}

	out := make([]Recommendation, 0, limit)
	for _, si := range scored {
		rec, ok := s.hydrate(si.Key, si.Score, reason)
		if !ok {
			continue
		}
		out = append(out, rec)
		if len(out) >= limit {
			break
		}
	}

	metrics.RecordRecommendation("recommend", string(effective), len(out) == 0, time.Since(start))
	return out, nil
}

// scoreForUser runs strategy selection and scoring against the current
// snapshot. candidates bounds how many scored items each engine
// contributes before blending.
func (s *Service) scoreForUser(ctx context.Context, userID, candidates int, strategy Strategy) (*snapshot, []ScoredItem, Strategy, string, error) {
	if strategy == "" {
		strategy = StrategyAuto
	}
	if !strategy.Valid() {
		return nil, nil, strategy, "", ErrInvalidStrategy
	}

	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, nil, strategy, "", err
	}

	effective := strategy
	if strategy == StrategyAuto {
		if s.provider.InteractionCount(userID) < s.cfg.ColdStartThreshold {
			effective = StrategyContent
		} else {
			effective = StrategyHybrid
		}
	}

	var scored []ScoredItem
	reason := ReasonHybrid
	switch effective {
	case StrategyCollaborative:
		scored = snap.matrix.collaborativeRecommend(userID, candidates, s.cfg.NeighborCount)
	case StrategyContent:
		history := snap.matrix.ratedKeys(userID)
		scored = snap.space.RecommendForHistory(history, candidates)
		if len(scored) == 0 {
			// No usable history at all. Serve global popularity so
			// brand-new users still get a deterministic, non-empty
			// rail when anyone has interacted with anything.
			scored = snap.matrix.popular(candidates, nil)
		}
		reason = ReasonColdStart
	case StrategyHybrid:
		scored = s.blend(snap, userID, candidates)
	}

	return snap, scored, effective, reason, nil
}

// blend combines collaborative and content scores over the union of
// candidate keys with the configured weights, substituting 0 for a
// source that did not propose a key.
func (s *Service) blend(snap *snapshot, userID, candidates int) []ScoredItem {
	collab := snap.matrix.collaborativeRecommend(userID, candidates, s.cfg.NeighborCount)
	history := snap.matrix.ratedKeys(userID)
	content := snap.space.RecommendForHistory(history, candidates)

	combined := make(map[catalog.ItemKey]float64, len(collab)+len(content))
	for _, si := range collab {
		combined[si.Key] += si.Score * s.cfg.CollaborativeWeight
	}
	for _, si := range content {
		combined[si.Key] += si.Score * s.cfg.ContentWeight
	}

	out := make([]ScoredItem, 0, len(combined))
	for key, score := range combined {
		out = append(out, ScoredItem{Key: key, Score: score})
	}
	sortScored(out)
	if len(out) > candidates {
		out = out[:candidates]
	}
	return out
}
