// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

// Package catalog defines the domain types shared by the recommendation
// core and its collaborators: catalog items (movies, series, seasons,
// episodes), watch-progress and rating records, and the namespaced
// ItemKey that unifies both catalogs in one scoring space.
//
// The package also provides an in-memory snapshot store implementing the
// read contracts the recommendation core consumes. Persistence is owned
// by external collaborators; this store holds the current data snapshot.
package catalog

import "time"

// Content status values. Only ready movies, active series and ready
// episodes participate in recommendation and play-next decisions.
const (
	MovieStatusPending    = "pending"
	MovieStatusProcessing = "processing"
	MovieStatusReady      = "ready"
	MovieStatusFailed     = "failed"

	SeriesStatusActive   = "active"
	SeriesStatusInactive = "inactive"

	EpisodeStatusPending    = "pending"
	EpisodeStatusProcessing = "processing"
	EpisodeStatusReady      = "ready"
	EpisodeStatusFailed     = "failed"
)

// Movie is a movie catalog row.
type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Director    string    `json:"director,omitempty"`
	Cast        []string  `json:"cast,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	ReleaseYear int       `json:"release_year,omitempty"`
	Duration    int       `json:"duration,omitempty"` // seconds
	PosterURL   string    `json:"poster_url,omitempty"`
	BackdropURL string    `json:"backdrop_url,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	Status      string    `json:"status"`
	ViewCount   int       `json:"view_count,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Key returns the movie's namespaced item key.
func (m Movie) Key() ItemKey { return MovieKey(m.ID) }

// Series is a series catalog row. Seasons and episodes are separate rows
// linked by ID, mirroring the series structure graph the core consumes.
type Series struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Director    string    `json:"director,omitempty"`
	Cast        []string  `json:"cast,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	ReleaseYear int       `json:"release_year,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`
	BackdropURL string    `json:"backdrop_url,omitempty"`
	Status      string    `json:"status"`
	ViewCount   int       `json:"view_count,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Key returns the series' namespaced item key.
func (s Series) Key() ItemKey { return SeriesKey(s.ID) }

// Season groups episodes within a series, ordered by SeasonNumber.
type Season struct {
	ID           int    `json:"id"`
	SeriesID     int    `json:"series_id"`
	SeasonNumber int    `json:"season_number"`
	Title        string `json:"title,omitempty"`
}

// Episode is a single episode, ordered by EpisodeNumber within a season.
type Episode struct {
	ID            int    `json:"id"`
	SeasonID      int    `json:"season_id"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Duration      int    `json:"duration,omitempty"` // seconds
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	Status        string `json:"status"`
}

// MovieWatch is a user's watch-progress record for a movie.
// At most one row exists per (user, movie); progress updates overwrite.
type MovieWatch struct {
	UserID    int       `json:"user_id"`
	MovieID   int       `json:"movie_id"`
	Percent   float64   `json:"watch_percentage"` // 0-100
	WatchedAt time.Time `json:"watched_at"`
}

// EpisodeWatch is a user's watch-progress record for an episode.
// At most one row exists per (user, episode).
type EpisodeWatch struct {
	UserID    int       `json:"user_id"`
	EpisodeID int       `json:"episode_id"`
	Percent   float64   `json:"watch_percentage"` // 0-100
	WatchedAt time.Time `json:"watched_at"`
}

// MovieRating is an explicit 1-5 star movie rating.
type MovieRating struct {
	UserID  int `json:"user_id"`
	MovieID int `json:"movie_id"`
	Rating  int `json:"rating"` // 1-5
}

// SeriesRating is an explicit 1-5 star series rating.
type SeriesRating struct {
	UserID   int `json:"user_id"`
	SeriesID int `json:"series_id"`
	Rating   int `json:"rating"` // 1-5
}
