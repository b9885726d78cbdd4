// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/nextreel/nextreel/internal/catalog"
	"github.com/nextreel/nextreel/internal/metrics"
)

// playNextSimilarLimit caps the series-recommendation list emitted when a
// series is exhausted.
const playNextSimilarLimit = 5

// NextForEpisode decides what plays after the given episode finishes.
//
// The decision chain: next ready episode in the same season, then the
// first ready episode of the next season, then a similar-series
// recommendation once the series is exhausted. A missing episode is a
// not-found error, never an empty result.
func (s *Service) NextForEpisode(ctx context.Context, userID, episodeID int) (*PlayNextResult, error) {
	start := time.Now()

	ep, ok := s.provider.EpisodeByID(episodeID)
	if !ok {
		return nil, ErrEpisodeNotFound
	}
	season, ok := s.provider.SeasonByID(ep.SeasonID)
	if !ok {
		return nil, ErrSeasonNotFound
	}

	// Next ready episode in the same season.
	for _, cand := range s.provider.EpisodesForSeason(season.ID) {
		if cand.EpisodeNumber == ep.EpisodeNumber+1 && cand.Status == catalog.EpisodeStatusReady {
			res := episodeResult(cand, season.SeasonNumber,
				fmt.Sprintf("Next episode: S%dE%d", season.SeasonNumber, cand.EpisodeNumber))
			metrics.RecordRecommendation("play_next", "episode", false, time.Since(start))
			return res, nil
		}
	}

	// Season finale: first ready episode of the next season.
	for _, nextSeason := range s.provider.SeasonsForSeries(season.SeriesID) {
		if nextSeason.SeasonNumber != season.SeasonNumber+1 {
			continue
		}
		for _, cand := range s.provider.EpisodesForSeason(nextSeason.ID) {
			if cand.Status == catalog.EpisodeStatusReady {
				res := episodeResult(cand, nextSeason.SeasonNumber,
					fmt.Sprintf("Next season: S%dE%d", nextSeason.SeasonNumber, cand.EpisodeNumber))
				metrics.RecordRecommendation("play_next", "episode", false, time.Since(start))
				return res, nil
			}
		}
		break
	}

	// Series exhausted: offer similar series instead.
	items, err := s.similarSeriesFor(ctx, season.SeriesID, userID)
	if err != nil {
		return nil, err
	}

	title := "this series"
	if sr, ok := s.provider.SeriesByID(season.SeriesID); ok {
		title = sr.Title
	}
	metrics.RecordRecommendation("play_next", "series_recommendation", len(items) == 0, time.Since(start))
	return &PlayNextResult{
		Type:   PlayNextSeriesRecommendation,
		Reason: fmt.Sprintf("You finished %s! Here's what to watch next:", title),
		Items:  items,
	}, nil
}

// NextForMovie decides what plays after the given movie finishes: the
// blender's top movie, then its top series, then the most similar ready
// movie by content, then none. A missing movie is a not-found error.
func (s *Service) NextForMovie(ctx context.Context, userID, movieID int) (*PlayNextResult, error) {
	start := time.Now()

	if _, ok := s.provider.MovieByID(movieID); !ok {
		return nil, ErrMovieNotFound
	}

	set, err := s.RecommendUnified(ctx, userID, playNextSimilarLimit)
	if err != nil {
		return nil, err
	}

	if len(set.Movies) > 0 {
		top := set.Movies[0]
		metrics.RecordRecommendation("play_next", "movie", false, time.Since(start))
		return &PlayNextResult{Type: PlayNextMovie, Reason: top.Reason, Movie: &top}, nil
	}
	if len(set.Series) > 0 {
		top := set.Series[0]
		metrics.RecordRecommendation("play_next", "series", false, time.Since(start))
		return &PlayNextResult{Type: PlayNextSeries, Reason: top.Reason, Series: &top}, nil
	}

	// Blender proposed nothing. Fall back to pure content similarity on
	// the finished movie itself.
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, si := range snap.space.Similar(catalog.MovieKey(movieID), playNextSimilarLimit) {
		if si.Key.Kind != catalog.KindMovie {
			continue
		}
		rec, ok := s.hydrate(si.Key, si.Score, ReasonSimilar)
		if !ok {
			continue
		}
		metrics.RecordRecommendation("play_next", "movie", false, time.Since(start))
		return &PlayNextResult{Type: PlayNextMovie, Reason: rec.Reason, Movie: &rec}, nil
	}

	metrics.RecordRecommendation("play_next", "none", true, time.Since(start))
	return &PlayNextResult{Type: PlayNextNone, Reason: "No recommendations available"}, nil
}

// similarSeriesFor merges content-similarity neighbors of the finished
// series with the blender's top series picks for the user, deduplicated
// by series id and capped at playNextSimilarLimit.
func (s *Service) similarSeriesFor(ctx context.Context, seriesID, userID int) ([]Recommendation, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	items := []Recommendation{}
	seen := map[int]struct{}{seriesID: {}}

	for _, si := range snap.space.Similar(catalog.SeriesKey(seriesID), playNextSimilarLimit) {
		if si.Key.Kind != catalog.KindSeries {
			continue
		}
		if _, dup := seen[si.Key.ID]; dup {
			continue
		}
		rec, ok := s.hydrate(si.Key, si.Score, ReasonSimilar)
		if !ok {
			continue
		}
		items = append(items, rec)
		seen[si.Key.ID] = struct{}{}
	}

	set, err := s.RecommendUnified(ctx, userID, 3)
	if err != nil {
		return nil, err
	}
	for _, rec := range set.Series {
		if _, dup := seen[rec.Key.ID]; dup {
			continue
		}
		items = append(items, rec)
		seen[rec.Key.ID] = struct{}{}
	}

	if len(items) > playNextSimilarLimit {
		items = items[:playNextSimilarLimit]
	}
	return items, nil
}

func episodeResult(ep catalog.Episode, seasonNumber int, reason string) *PlayNextResult {
	return &PlayNextResult{
		Type:   PlayNextEpisode,
		Reason: reason,
		Episode: &EpisodeRef{
			EpisodeID:     ep.ID,
			EpisodeNumber: ep.EpisodeNumber,
			SeasonNumber:  seasonNumber,
			Title:         ep.Title,
			Description:   ep.Description,
			Duration:      ep.Duration,
			ThumbnailURL:  ep.ThumbnailURL,
			VideoURL:      ep.VideoURL,
		},
	}
}
