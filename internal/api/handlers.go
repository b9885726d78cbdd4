// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/nextreel/nextreel/internal/catalog"
	"github.com/nextreel/nextreel/internal/config"
	"github.com/nextreel/nextreel/internal/logging"
	"github.com/nextreel/nextreel/internal/recommend"
)

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	svc    *recommend.Service
	store  *catalog.Store
	cfg    *config.Config
	logger zerolog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc *recommend.Service, store *catalog.Store, cfg *config.Config) *Handler {
	return &Handler{
		svc:    svc,
		store:  store,
		cfg:    cfg,
		logger: logging.WithComponent("api"),
	}
}

// requestContext derives a context bounded by the configured per-request
// budget. Long matrix builds hit this deadline and surface as 503.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.cfg.API.RequestTimeout)
}

// urlInt parses a positive integer URL parameter.
func urlInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// queryLimit parses the limit query parameter, clamped to the configured
// maximum, defaulting when absent.
func (h *Handler) queryLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.cfg.API.DefaultLimit, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	if v > h.cfg.API.MaxLimit {
		v = h.cfg.API.MaxLimit
	}
	return v, true
}

// writeServiceError maps recommend errors onto HTTP responses.
func (h *Handler) writeServiceError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrMovieNotFound),
		errors.Is(err, recommend.ErrSeriesNotFound),
		errors.Is(err, recommend.ErrEpisodeNotFound),
		errors.Is(err, recommend.ErrSeasonNotFound),
		errors.Is(err, recommend.ErrItemNotFound):
		rw.NotFound(err.Error())
	case errors.Is(err, recommend.ErrInvalidStrategy):
		rw.BadRequest(err.Error())
	case errors.Is(err, recommend.ErrRefreshThrottled):
		rw.TooManyRequests(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		rw.Timeout("request exceeded its time budget")
	default:
		h.logger.Error().Err(err).Msg("Recommendation request failed")
		rw.InternalError("an unexpected error occurred")
	}
}

// Health reports liveness plus the current snapshot version.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"status":           "ok",
		"snapshot_version": h.svc.SnapshotVersion(),
		"data_version":     h.store.Version(),
	})
}

// Recommendations serves GET /users/{userID}/recommendations.
// Query: limit, strategy (auto|hybrid|collaborative|content).
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := urlInt(r, "userID")
	if !ok {
		rw.BadRequest("invalid user id")
		return
	}
	limit, ok := h.queryLimit(r)
	if !ok {
		rw.BadRequest("invalid limit")
		return
	}
	strategy := recommend.Strategy(r.URL.Query().Get("strategy"))
	if strategy == "" {
		strategy = recommend.StrategyAuto
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	recs, err := h.svc.RecommendForUser(ctx, userID, limit, strategy)
	if err != nil {
		h.writeServiceError(rw, err)
		return
	}
	rw.SuccessWithMeta(recs, &APIMeta{Count: len(recs)})
}

// UnifiedRecommendations serves GET /users/{userID}/recommendations/unified.
func (h *Handler) UnifiedRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := urlInt(r, "userID")
	if !ok {
		rw.BadRequest("invalid user id")
		return
	}
	limit, ok := h.queryLimit(r)
	if !ok {
		rw.BadRequest("invalid limit")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	set, err := h.svc.RecommendUnified(ctx, userID, limit)
	if err != nil {
		h.writeServiceError(rw, err)
		return
	}
	rw.SuccessWithMeta(set, &APIMeta{Count: len(set.Movies) + len(set.Series)})
}

// SimilarItems serves GET /similar-to/{kind}/{id}.
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	key, ok := parseKindID(r)
	if !ok {
		rw.BadRequest("invalid item reference")
		return
	}
	limit, ok := h.queryLimit(r)
	if !ok {
		rw.BadRequest("invalid limit")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	items, err := h.svc.SimilarItems(ctx, key, limit)
	if err != nil {
		h.writeServiceError(rw, err)
		return
	}
	rw.SuccessWithMeta(items, &APIMeta{Count: len(items)})
}

// Trending serves GET /trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := h.queryLimit(r)
	if !ok {
		rw.BadRequest("invalid limit")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	items, err := h.svc.Trending(ctx, limit)
	if err != nil {
		h.writeServiceError(rw, err)
		return
	}
	rw.SuccessWithMeta(items, &APIMeta{Count: len(items)})
}

// PlayNextEpisode serves GET /users/{userID}/play-next/episode/{episodeID}.
func (h *Handler) PlayNextEpisode(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.svc.NextForEpisode(ctx, userID, episodeID)
	if err != nil {
		h.writeServiceError(rw, err)
		return
	}
	rw.Success(res)
}

// PlayNextMovie serves GET /users/{userID}/play-next/movie/{movieID}.
func (h *Handler) PlayNextMovie(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.svc.NextForMovie(ctx, userID, movieID)
	if err != nil {
		h.writeServiceError(rw, err)
		return
	}
	rw.Success(res)
}

// Refresh serves POST /refresh: a synchronous, idempotent rebuild of the
// derived matrices and vector space.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.svc.Refresh(ctx); err != nil {
		h.writeServiceError(rw, err)
		return
	}
	rw.Success(map[string]interface{}{
		"snapshot_version": h.svc.SnapshotVersion(),
	})
}

// parseKindID builds an ItemKey from the kind and id URL parameters.
func parseKindID(r *http.Request) (catalog.ItemKey, bool) {
	id, ok := urlInt(r, "id")
	if !ok {
		return catalog.ItemKey{}, false
	}
	switch chi.URLParam(r, "kind") {
	case "movie":
		return catalog.MovieKey(id), true
	case "series":
		return catalog.SeriesKey(id), true
	}
	return catalog.ItemKey{}, false
}
