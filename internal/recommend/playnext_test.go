// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/nextreel/nextreel/internal/catalog"
)

func TestNextForEpisodeSameSeason(t *testing.T) {
	svc := newTestService(t, engineFixture())

	res, err := svc.NextForEpisode(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("NextForEpisode() error = %v", err)
	}
	if res.Type != PlayNextEpisode {
		t.Fatalf("type = %v, want episode", res.Type)
	}
	if res.Episode == nil || res.Episode.EpisodeID != 101 {
		t.Fatalf("episode payload = %+v, want episode 101", res.Episode)
	}
	if res.Reason != "Next episode: S1E2" {
		t.Errorf("reason = %q, want %q", res.Reason, "Next episode: S1E2")
	}
}

func TestNextForEpisodeSkipsNonReadyEpisode(t *testing.T) {
	store := engineFixture()
	store.PutEpisode(catalog.Episode{ID: 101, SeasonID: 1, EpisodeNumber: 2,
		Title: "Drift", Status: catalog.EpisodeStatusProcessing})
	svc := newTestService(t, store)

	res, err := svc.NextForEpisode(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("NextForEpisode() error = %v", err)
	}
	// The only successor is not ready and there is no next season, so
	// the series counts as exhausted.
	if res.Type != PlayNextSeriesRecommendation {
		t.Errorf("type = %v, want series_recommendation", res.Type)
	}
}

func TestNextForEpisodeSeasonRollover(t *testing.T) {
	store := engineFixture()
	store.PutSeason(catalog.Season{ID: 3, SeriesID: 1, SeasonNumber: 2})
	store.PutEpisode(catalog.Episode{ID: 110, SeasonID: 3, EpisodeNumber: 1,
		Title: "Return", Status: catalog.EpisodeStatusReady})
	svc := newTestService(t, store)

	res, err := svc.NextForEpisode(context.Background(), 1, 101)
	if err != nil {
		t.Fatalf("NextForEpisode() error = %v", err)
	}
	if res.Type != PlayNextEpisode {
		t.Fatalf("type = %v, want episode", res.Type)
	}
	if res.Episode.EpisodeID != 110 || res.Episode.SeasonNumber != 2 {
		t.Errorf("payload = %+v, want S2E1 (episode 110)", res.Episode)
	}
	if res.Reason != "Next season: S2E1" {
		t.Errorf("reason = %q, want %q", res.Reason, "Next season: S2E1")
	}
}

func TestNextForEpisodeSeriesExhausted(t *testing.T) {
	svc := newTestService(t, engineFixture())

	// Episode 101 is the last episode of the last season of series 1.
	res, err := svc.NextForEpisode(context.Background(), 1, 101)
	if err != nil {
		t.Fatalf("NextForEpisode() error = %v", err)
	}
	if res.Type != PlayNextSeriesRecommendation {
		t.Fatalf("type = %v, want series_recommendation", res.Type)
	}
	if len(res.Items) > 5 {
		t.Errorf("items count = %d, want <= 5", len(res.Items))
	}
	for _, rec := range res.Items {
		if rec.Key == catalog.SeriesKey(1) {
			t.Error("finished series recommended to itself")
		}
		if rec.Key.Kind != catalog.KindSeries {
			t.Errorf("non-series item %v in series recommendation", rec.Key)
		}
	}
}

func TestNextForEpisodeSingleEpisodeSeries(t *testing.T) {
	store := engineFixture()
	// Series 2 has exactly one season with one episode.
	svc := newTestService(t, store)

	res, err := svc.NextForEpisode(context.Background(), 2, 200)
	if err != nil {
		t.Fatalf("NextForEpisode() error = %v", err)
	}
	if res.Type != PlayNextSeriesRecommendation {
		t.Errorf("type = %v, want series_recommendation for single-episode series", res.Type)
	}
}

func TestNextForEpisodeNotFound(t *testing.T) {
	svc := newTestService(t, engineFixture())

	if _, err := svc.NextForEpisode(context.Background(), 1, 9999); !errors.Is(err, ErrEpisodeNotFound) {
		t.Errorf("error = %v, want ErrEpisodeNotFound", err)
	}
}

func TestNextForMovieUsesBlender(t *testing.T) {
	svc := newTestService(t, engineFixture())

	res, err := svc.NextForMovie(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("NextForMovie() error = %v", err)
	}
	if res.Type != PlayNextMovie {
		t.Fatalf("type = %v, want movie", res.Type)
	}
	if res.Movie == nil || res.Movie.Key.Kind != catalog.KindMovie {
		t.Fatalf("movie payload = %+v", res.Movie)
	}
	// User 1 already finished movies 10 and 11; they must not come back.
	if res.Movie.Key == catalog.MovieKey(10) || res.Movie.Key == catalog.MovieKey(11) {
		t.Errorf("already-watched movie %v recommended", res.Movie.Key)
	}
}

func TestNextForMovieNoneIsNotAnError(t *testing.T) {
	s := catalog.NewStore()
	s.PutMovie(catalog.Movie{ID: 1, Title: "Only One", Status: catalog.MovieStatusReady})
	svc := newTestService(t, s)

	res, err := svc.NextForMovie(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("NextForMovie() error = %v", err)
	}
	if res.Type != PlayNextNone {
		t.Errorf("type = %v, want none", res.Type)
	}
}

func TestNextForMovieNotFound(t *testing.T) {
	svc := newTestService(t, engineFixture())

	if _, err := svc.NextForMovie(context.Background(), 1, 9999); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("error = %v, want ErrMovieNotFound", err)
	}
}
