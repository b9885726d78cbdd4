// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nextreel/nextreel/internal/catalog"
	"github.com/nextreel/nextreel/internal/config"
	"github.com/nextreel/nextreel/internal/recommend"
)

// Router wires handlers, middleware, and configuration into one
// http.Handler.
type Router struct {
	handler *Handler
	cfg     *config.Config
}

// NewRouter creates a Router.
func NewRouter(svc *recommend.Service, store *catalog.Store, cfg *config.Config) *Router {
	return &Router{
		handler: NewHandler(svc, store, cfg),
		cfg:     cfg,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger())
	r.Use(Metrics())
	r.Use(CORS(router.cfg.API.CORSOrigins))

	r.Get("/api/v1/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(router.cfg.API.RateLimit))

		// Read side: recommendations and play-next decisions.
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/recommendations", router.handler.Recommendations)
			r.Get("/recommendations/unified", router.handler.UnifiedRecommendations)
			r.Get("/play-next/episode/{episodeID}", router.handler.PlayNextEpisode)
			r.Get("/play-next/movie/{movieID}", router.handler.PlayNextMovie)

			// Write side: interaction signals.
			r.Post("/watch/movies/{movieID}", router.handler.RecordMovieWatch)
			r.Post("/watch/episodes/{episodeID}", router.handler.RecordEpisodeWatch)
			r.Post("/ratings/movies/{movieID}", router.handler.RateMovie)
			r.Post("/ratings/series/{seriesID}", router.handler.RateSeries)
		})

		r.Get("/similar-to/{kind}/{id}", router.handler.SimilarItems)
		r.Get("/trending", router.handler.Trending)
		r.Post("/refresh", router.handler.Refresh)

		// Catalog maintenance.
		r.Route("/catalog", func(r chi.Router) {
			r.Put("/movies", router.handler.UpsertMovie)
			r.Put("/series", router.handler.UpsertSeries)
			r.Put("/seasons", router.handler.UpsertSeason)
			r.Put("/episodes", router.handler.UpsertEpisode)
		})
	})

	return r
}
