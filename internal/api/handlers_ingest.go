// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/nextreel/nextreel/internal/catalog"
	"github.com/nextreel/nextreel/internal/validation"
)

// Ingestion endpoints feed the interaction store. They are the write
// side of the engine: watch progress and explicit ratings arrive here,
// and the next snapshot rebuild picks them up.

type watchProgressRequest struct {
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

type ratingRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

type movieUpsertRequest struct {
	ID          int      `json:"id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Genres      []string `json:"genres"`
	ReleaseYear int      `json:"release_year" validate:"omitempty,gte=1880,lte=2100"`
	Duration    int      `json:"duration" validate:"omitempty,gt=0"`
	PosterURL   string   `json:"poster_url"`
	BackdropURL string   `json:"backdrop_url"`
	VideoURL    string   `json:"video_url"`
	Status      string   `json:"status" validate:"required,oneof=pending processing ready failed"`
	ViewCount   int      `json:"view_count" validate:"omitempty,gte=0"`
}

type seriesUpsertRequest struct {
	ID          int      `json:"id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Genres      []string `json:"genres"`
	ReleaseYear int      `json:"release_year" validate:"omitempty,gte=1880,lte=2100"`
	PosterURL   string   `json:"poster_url"`
	BackdropURL string   `json:"backdrop_url"`
	Status      string   `json:"status" validate:"required,oneof=active inactive"`
	ViewCount   int      `json:"view_count" validate:"omitempty,gte=0"`
}

type seasonUpsertRequest struct {
	ID           int    `json:"id" validate:"required,gt=0"`
	SeriesID     int    `json:"series_id" validate:"required,gt=0"`
	SeasonNumber int    `json:"season_number" validate:"required,gt=0"`
	Title        string `json:"title"`
}

type episodeUpsertRequest struct {
	ID            int    `json:"id" validate:"required,gt=0"`
	SeasonID      int    `json:"season_id" validate:"required,gt=0"`
	EpisodeNumber int    `json:"episode_number" validate:"required,gt=0"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Duration      int    `json:"duration" validate:"omitempty,gt=0"`
	ThumbnailURL  string `json:"thumbnail_url"`
	VideoURL      string `json:"video_url"`
	Status        string `json:"status" validate:"required,oneof=pending processing ready failed"`
}

// decodeAndValidate decodes the request body into dst and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rw.BadRequest("invalid JSON body")
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// RecordMovieWatch serves POST /users/{userID}/watch/movies/{movieID}.
func (h *Handler) RecordMovieWatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := urlInt(r, "userID")
	if !ok {
		rw.BadRequest("invalid user id")
		return
	}
	movieID, ok := urlInt(r, "movieID")
	if !ok {
		rw.BadRequest("invalid movie id")
		return
	}
	if _, exists := h.store.MovieByID(movieID); !exists {
		rw.NotFound("movie not found")
		return
	}

	var req watchProgressRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	h.store.RecordMovieWatch(catalog.MovieWatch{
		UserID:  userID,
		MovieID: movieID,
		Percent: req.Percent,
	})
	rw.Success(map[string]interface{}{"recorded": true})
}

// RecordEpisodeWatch serves POST /users/{userID}/watch/episodes/{episodeID}.
func (h *Handler) RecordEpisodeWatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := urlInt(r, "userID")
	if !ok {
		rw.BadRequest("invalid user id")
		return
	}
	episodeID, ok := urlInt(r, "episodeID")
	if !ok {
		rw.BadRequest("invalid episode id")
		return
	}
	if _, exists := h.store.EpisodeByID(episodeID); !exists {
		rw.NotFound("episode not found")
		return
	}

	var req watchProgressRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	h.store.RecordEpisodeWatch(catalog.EpisodeWatch{
		UserID:    userID,
		EpisodeID: episodeID,
		Percent:   req.Percent,
	})
	rw.Success(map[string]interface{}{"recorded": true})
}

// RateMovie serves POST /users/{userID}/ratings/movies/{movieID}.
func (h *Handler) RateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := urlInt(r, "userID")
	if !ok {
		rw.BadRequest("invalid user id")
		return
	}
	movieID, ok := urlInt(r, "movieID")
	if !ok {
		rw.BadRequest("invalid movie id")
		return
	}
	if _, exists := h.store.MovieByID(movieID); !exists {
		rw.NotFound("movie not found")
		return
	}

	var req ratingRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	h.store.RateMovie(catalog.MovieRating{UserID: userID, MovieID: movieID, Rating: req.Rating})
	rw.Success(map[string]interface{}{"rated": true})
}

// RateSeries serves POST /users/{userID}/ratings/series/{seriesID}.
func (h *Handler) RateSeries(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := urlInt(r, "userID")
	if !ok {
		rw.BadRequest("invalid user id")
		return
	}
	seriesID, ok := urlInt(r, "seriesID")
	if !ok {
		rw.BadRequest("invalid series id")
		return
	}
	if _, exists := h.store.SeriesByID(seriesID); !exists {
		rw.NotFound("series not found")
		return
	}

	var req ratingRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	h.store.RateSeries(catalog.SeriesRating{UserID: userID, SeriesID: seriesID, Rating: req.Rating})
	rw.Success(map[string]interface{}{"rated": true})
}

// UpsertMovie serves PUT /catalog/movies.
func (h *Handler) UpsertMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req movieUpsertRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	h.store.PutMovie(catalog.Movie{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Director:    req.Director,
		Cast:        req.Cast,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		Duration:    req.Duration,
		PosterURL:   req.PosterURL,
		BackdropURL: req.BackdropURL,
		VideoURL:    req.VideoURL,
		Status:      req.Status,
		ViewCount:   req.ViewCount,
	})
	rw.Created(map[string]interface{}{"id": req.ID})
}

// UpsertSeries serves PUT /catalog/series.
func (h *Handler) UpsertSeries(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req seriesUpsertRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	h.store.PutSeries(catalog.Series{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Director:    req.Director,
		Cast:        req.Cast,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		PosterURL:   req.PosterURL,
		BackdropURL: req.BackdropURL,
		Status:      req.Status,
		ViewCount:   req.ViewCount,
	})
	rw.Created(map[string]interface{}{"id": req.ID})
}

// UpsertSeason serves PUT /catalog/seasons.
func (h *Handler) UpsertSeason(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req seasonUpsertRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}
	if _, exists := h.store.SeriesByID(req.SeriesID); !exists {
		rw.NotFound("series not found")
		return
	}

	h.store.PutSeason(catalog.Season{
		ID:           req.ID,
		SeriesID:     req.SeriesID,
		SeasonNumber: req.SeasonNumber,
		Title:        req.Title,
	})
	rw.Created(map[string]interface{}{"id": req.ID})
}

// UpsertEpisode serves PUT /catalog/episodes.
func (h *Handler) UpsertEpisode(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req episodeUpsertRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}
	if _, exists := h.store.SeasonByID(req.SeasonID); !exists {
		rw.NotFound("season not found")
		return
	}

	h.store.PutEpisode(catalog.Episode{
		ID:            req.ID,
		SeasonID:      req.SeasonID,
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		Description:   req.Description,
		Duration:      req.Duration,
		ThumbnailURL:  req.ThumbnailURL,
		VideoURL:      req.VideoURL,
		Status:        req.Status,
	})
	rw.Created(map[string]interface{}{"id": req.ID})
}
