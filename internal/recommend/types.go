// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"time"

	"github.com/nextreel/nextreel/internal/catalog"
)

// Note: This package depends only on the catalog package for domain types.
// The DataProvider interface allows integration with any storage layer
// without creating circular imports.

// Strategy selects which scoring path produces recommendations.
type Strategy string

const (
	// StrategyAuto picks hybrid or content-only based on the user's
	// interaction volume.
	StrategyAuto Strategy = "auto"
	// StrategyHybrid forces the weighted collaborative + content blend.
	StrategyHybrid Strategy = "hybrid"
	// StrategyCollaborative forces pure collaborative filtering.
	StrategyCollaborative Strategy = "collaborative"
	// StrategyContent forces pure content-based filtering.
	StrategyContent Strategy = "content"
)

// Valid reports whether s is a recognized strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyAuto, StrategyHybrid, StrategyCollaborative, StrategyContent:
		return true
	}
	return false
}

// Reason strings attached to recommendation output. These are part of the
// API surface and rendered directly by clients.
const (
	// ReasonColdStart is used when the user has too little history for
	// collaborative signal.
	ReasonColdStart = "Based on what you've watched"
	// ReasonHybrid is used for the full weighted blend.
	ReasonHybrid = "Recommended for you"
	// ReasonSimilar is used for content-similarity fallbacks.
	ReasonSimilar = "You might also like"
)

// ScoredItem pairs an item key with a relevance score. Lists of ScoredItem
// are always ordered by score descending, ties broken by key ascending.
type ScoredItem struct {
	Key   catalog.ItemKey `json:"key"`
	Score float64         `json:"score"`
}

// Recommendation is a fully hydrated recommendation entry. Movie entries
// carry Duration; series entries carry SeasonCount and EpisodeCount.
type Recommendation struct {
	Key          catalog.ItemKey `json:"key"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	PosterURL    string          `json:"poster_url,omitempty"`
	BackdropURL  string          `json:"backdrop_url,omitempty"`
	ReleaseYear  int             `json:"release_year,omitempty"`
	Duration     int             `json:"duration,omitempty"`
	Genres       []string        `json:"genres,omitempty"`
	SeasonCount  int             `json:"season_count,omitempty"`
	EpisodeCount int             `json:"episode_count,omitempty"`
	Score        float64         `json:"score"`
	Reason       string          `json:"reason"`
}

// RecommendationSet partitions blended output by item namespace so clients
// can render movie and series rails independently.
type RecommendationSet struct {
	Movies []Recommendation `json:"movies"`
	Series []Recommendation `json:"series"`

	// Strategy records which path actually produced the scores.
	Strategy Strategy `json:"strategy"`

	// SnapshotVersion identifies the data snapshot the scores came from.
	SnapshotVersion int64 `json:"snapshot_version"`
}

// TrendingItem is a movie ranked by recent watch activity.
type TrendingItem struct {
	MovieID     int      `json:"movie_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	BackdropURL string   `json:"backdrop_url,omitempty"`
	ReleaseYear int      `json:"release_year,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	WatchCount  int      `json:"watch_count"`
}

// PlayNextType identifies the kind of play-next outcome.
type PlayNextType string

const (
	// PlayNextEpisode means the next episode of the current series.
	PlayNextEpisode PlayNextType = "episode"
	// PlayNextMovie means a recommended movie.
	PlayNextMovie PlayNextType = "movie"
	// PlayNextSeries means a recommended series.
	PlayNextSeries PlayNextType = "series"
	// PlayNextSeriesRecommendation means the series is exhausted and a
	// list of similar series is offered instead.
	PlayNextSeriesRecommendation PlayNextType = "series_recommendation"
	// PlayNextNone means no recommendation is available. This is a
	// legitimate empty outcome, not a failure.
	PlayNextNone PlayNextType = "none"
)

// EpisodeRef carries the playback payload for a next-episode decision.
type EpisodeRef struct {
	EpisodeID     int    `json:"episode_id"`
	EpisodeNumber int    `json:"episode_number"`
	SeasonNumber  int    `json:"season_number"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Duration      int    `json:"duration,omitempty"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
}

// PlayNextResult is the outcome of a play-next decision. Exactly one of
// Episode, Movie, Series, or Items is populated, matching Type.
type PlayNextResult struct {
	Type    PlayNextType     `json:"type"`
	Reason  string           `json:"reason"`
	Episode *EpisodeRef      `json:"episode,omitempty"`
	Movie   *Recommendation  `json:"movie,omitempty"`
	Series  *Recommendation  `json:"series,omitempty"`
	Items   []Recommendation `json:"items,omitempty"`
}

// DataProvider defines the read interface the recommendation core needs
// from the storage layer. *catalog.Store satisfies it.
type DataProvider interface {
	// Version returns a monotonically increasing stamp that changes on
	// every data mutation. Used for snapshot staleness detection.
	Version() int64

	// Catalog reads. Ready/Active accessors return deterministic
	// ID-ordered slices.
	ReadyMovies() []catalog.Movie
	ActiveSeries() []catalog.Series
	MovieByID(id int) (catalog.Movie, bool)
	SeriesByID(id int) (catalog.Series, bool)
	SeasonByID(id int) (catalog.Season, bool)
	EpisodeByID(id int) (catalog.Episode, bool)
	SeasonsForSeries(seriesID int) []catalog.Season
	EpisodesForSeason(seasonID int) []catalog.Episode
	SeriesIDForEpisode(episodeID int) (int, bool)
	SeriesCounts(seriesID int) (seasons, episodes int)

	// Interaction reads.
	MovieWatches() []catalog.MovieWatch
	EpisodeWatches() []catalog.EpisodeWatch
	MovieRatings() []catalog.MovieRating
	SeriesRatings() []catalog.SeriesRating
	InteractionCount(userID int) int
	MovieWatchCountsSince(cutoff time.Time) map[int]int
}
