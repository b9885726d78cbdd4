// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/nextreel/nextreel/internal/catalog"
	"github.com/nextreel/nextreel/internal/logging"
	"github.com/nextreel/nextreel/internal/metrics"
)

// snapshot bundles the derived structures computed from one data version:
// the unified rating matrix and the content vector space. Snapshots are
// immutable once built, so requests can share one without locking.
type snapshot struct {
	version int64
	builtAt time.Time
	matrix  *ratingMatrix
	space   *VectorSpace
}

// Service is the recommendation engine facade. It owns snapshot lifecycle
// and exposes the scoring operations the API layer calls.
// It is safe for concurrent use.
type Service struct {
	provider DataProvider
	cfg      *Config
	logger   zerolog.Logger

	mu   sync.Mutex
	snap *snapshot

	refreshLimiter *rate.Limiter
}

// NewService creates a Service over the given data provider. A nil cfg
// uses DefaultConfig.
func NewService(provider DataProvider, cfg *Config) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recommend config: %w", err)
	}
	interval := time.Minute / time.Duration(cfg.RefreshPerMinute)
	return &Service{
		provider:       provider,
		cfg:            cfg.Clone(),
		logger:         logging.WithComponent("recommend"),
		refreshLimiter: rate.NewLimiter(rate.Every(interval), cfg.RefreshPerMinute),
	}, nil
}

// Config returns a copy of the service configuration.
func (s *Service) Config() *Config {
	return s.cfg.Clone()
}

// currentSnapshot returns a snapshot matching the provider's current data
// version, rebuilding if the cached one is stale or absent.
func (s *Service) currentSnapshot(ctx context.Context) (*snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	version := s.provider.Version()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap != nil && s.snap.version == version {
		return s.snap, nil
	}
	return s.rebuildLocked(version), nil
}

// rebuildLocked builds a fresh snapshot. Caller holds s.mu.
func (s *Service) rebuildLocked(version int64) *snapshot {
	start := time.Now()
	snap := &snapshot{
		version: version,
		builtAt: start,
		matrix:  buildRatingMatrix(s.provider),
		space:   buildVectorSpace(s.provider, s.cfg.VocabularySize),
	}
	s.snap = snap

	elapsed := time.Since(start)
	metrics.RecordSnapshotBuild(version, len(snap.matrix.users), snap.space.Size(), elapsed)
	s.logger.Info().
		Int64("version", version).
		Int("users", len(snap.matrix.users)).
		Int("rated_items", len(snap.matrix.items)).
		Int("vectorized_items", snap.space.Size()).
		Dur("elapsed", elapsed).
		Msg("Snapshot rebuilt")

	return snap
}

// Refresh forces a snapshot rebuild regardless of staleness. It is
// rate-limited; callers exceeding the budget get ErrRefreshThrottled.
func (s *Service) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.refreshLimiter.Allow() {
		return ErrRefreshThrottled
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuildLocked(s.provider.Version())
	return nil
}

// SnapshotVersion returns the version of the cached snapshot, or 0 if no
// snapshot has been built yet.
func (s *Service) SnapshotVersion() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return 0
	}
	return s.snap.version
}

// SimilarItems returns up to limit items of the same kind most similar to
// key. The referenced item must exist in the catalog; items that have
// left ready/active status since vectorization are silently dropped.
func (s *Service) SimilarItems(ctx context.Context, key catalog.ItemKey, limit int) ([]Recommendation, error) {
	start := time.Now()

	if err := s.checkItemExists(key); err != nil {
		return nil, err
	}

	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	scored := snap.space.Similar(key, limit*2)
	out := make([]Recommendation, 0, limit)
	for _, si := range scored {
		if si.Key.Kind != key.Kind {
			continue
		}
		rec, ok := s.hydrate(si.Key, si.Score, ReasonSimilar)
		if !ok {
			continue
		}
		out = append(out, rec)
		if len(out) >= limit {
			break
		}
	}

	metrics.RecordRecommendation("similar", "content", len(out) == 0, time.Since(start))
	return out, nil
}

// Trending returns the most-watched ready movies inside the trending
// window, ranked by watch count. With no recent activity it falls back to
// all-time view counts.
func (s *Service) Trending(ctx context.Context, limit int) ([]TrendingItem, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-s.cfg.TrendingWindow)
	counts := s.provider.MovieWatchCountsSince(cutoff)

	var out []TrendingItem
	if len(counts) == 0 {
		// No recent activity. Rank by lifetime view count instead.
		movies := s.provider.ReadyMovies()
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].ViewCount > movies[j].ViewCount
		})
		for _, m := range movies {
			out = append(out, trendingItem(m, m.ViewCount))
			if len(out) >= limit {
				break
			}
		}
	} else {
		ids := make([]int, 0, len(counts))
		for id := range counts {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			if counts[ids[i]] != counts[ids[j]] {
				return counts[ids[i]] > counts[ids[j]]
			}
			return ids[i] < ids[j]
		})
		for _, id := range ids {
			m, ok := s.provider.MovieByID(id)
			if !ok {
				continue
			}
			out = append(out, trendingItem(m, counts[id]))
			if len(out) >= limit {
				break
			}
		}
	}

	metrics.RecordRecommendation("trending", "popularity", len(out) == 0, time.Since(start))
	return out, nil
}

func trendingItem(m catalog.Movie, watchCount int) TrendingItem {
	return TrendingItem{
		MovieID:     m.ID,
		Title:       m.Title,
		Description: m.Description,
		PosterURL:   m.PosterURL,
		BackdropURL: m.BackdropURL,
		ReleaseYear: m.ReleaseYear,
		Genres:      m.Genres,
		WatchCount:  watchCount,
	}
}

// checkItemExists verifies the catalog knows the item, independent of its
// current status.
func (s *Service) checkItemExists(key catalog.ItemKey) error {
	switch key.Kind {
	case catalog.KindMovie:
		if _, ok := s.provider.MovieByID(key.ID); !ok {
			return ErrMovieNotFound
		}
	case catalog.KindSeries:
		if _, ok := s.provider.SeriesByID(key.ID); !ok {
			return ErrSeriesNotFound
		}
	default:
		return ErrItemNotFound
	}
	return nil
}

// hydrate resolves an item key into a full Recommendation, re-validating
// catalog status. Returns false for unknown or non-ready/inactive items
// so stale references vanish from output instead of surfacing errors.
func (s *Service) hydrate(key catalog.ItemKey, score float64, reason string) (Recommendation, bool) {
	switch key.Kind {
	case catalog.KindMovie:
		m, ok := s.provider.MovieByID(key.ID)
		if !ok || m.Status != catalog.MovieStatusReady {
			return Recommendation{}, false
		}
		return Recommendation{
			Key:         key,
			Title:       m.Title,
			Description: m.Description,
			PosterURL:   m.PosterURL,
			BackdropURL: m.BackdropURL,
			ReleaseYear: m.ReleaseYear,
			Duration:    m.Duration,
			Genres:      m.Genres,
			Score:       round3(score),
			Reason:      reason,
		}, true
	case catalog.KindSeries:
		sr, ok := s.provider.SeriesByID(key.ID)
		if !ok || sr.Status != catalog.SeriesStatusActive {
			return Recommendation{}, false
		}
		seasons, episodes := s.provider.SeriesCounts(key.ID)
		return Recommendation{
			Key:          key,
			Title:        sr.Title,
			Description:  sr.Description,
			PosterURL:    sr.PosterURL,
			BackdropURL:  sr.BackdropURL,
			ReleaseYear:  sr.ReleaseYear,
			Genres:       sr.Genres,
			SeasonCount:  seasons,
			EpisodeCount: episodes,
			Score:        round3(score),
			Reason:       reason,
		}, true
	}
	return Recommendation{}, false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
