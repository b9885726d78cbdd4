// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/nextreel/nextreel/internal/logging"
	"github.com/nextreel/nextreel/internal/metrics"
)

// RequestHeaderID is the header carrying the request correlation ID.
const RequestHeaderID = "X-Request-ID"

// RequestID attaches a correlation ID to every request. An incoming
// X-Request-ID is honored so upstream proxies can trace calls end to end;
// otherwise a fresh ID is generated.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestHeaderID)
			if requestID == "" {
				requestID = logging.GenerateRequestID()
			}

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			w.Header().Set(RequestHeaderID, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger logs one line per completed request with method, path,
// status, and elapsed time.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logging.Ctx(r.Context()).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(start)).
				Msg("Request completed")
		})
	}
}

// Metrics records Prometheus counters and latency per request, labeled by
// the matched route pattern rather than the raw path to bound cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			pattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				pattern = rctx.RoutePattern()
			}
			metrics.RecordAPIRequest(r.Method, pattern, ww.Status(), time.Since(start))
		})
	}
}

// CORS configures cross-origin access for the configured origins.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestHeaderID},
		ExposedHeaders:   []string{RequestHeaderID},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// RateLimit limits each client IP to requestsPerMinute.
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.LimitByIP(requestsPerMinute, time.Minute)
}
