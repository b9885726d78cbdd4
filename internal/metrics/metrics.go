// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

// Package metrics provides Prometheus instrumentation for the
// recommendation service: API latency/throughput, snapshot rebuild
// cost, and per-operation recommendation timings.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Recommendation core metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation operations",
		},
		[]string{"operation", "strategy"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Recommendation operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	RecommendEmptyResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_empty_results_total",
			Help: "Total number of recommendation operations that returned no items",
		},
		[]string{"operation"},
	)

	// Snapshot (derived matrix/vector space) metrics
	SnapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_build_duration_seconds",
			Help:    "Duration of interaction-matrix and feature-vector rebuilds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	SnapshotVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_version",
			Help: "Version stamp of the current derived-data snapshot",
		},
	)

	SnapshotUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_users",
			Help: "Number of users in the current interaction matrix",
		},
	)

	SnapshotItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_items",
			Help: "Number of items in the current interaction matrix",
		},
	)
)

// RecordAPIRequest records an API request with its outcome and duration.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation records a recommendation operation.
func RecordRecommendation(operation, strategy string, empty bool, duration time.Duration) {
	RecommendRequestsTotal.WithLabelValues(operation, strategy).Inc()
	RecommendDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if empty {
		RecommendEmptyResults.WithLabelValues(operation).Inc()
	}
}

// RecordSnapshotBuild records a snapshot rebuild with its resulting dimensions.
func RecordSnapshotBuild(version int64, users, items int, duration time.Duration) {
	SnapshotBuildDuration.Observe(duration.Seconds())
	SnapshotVersion.Set(float64(version))
	SnapshotUsers.Set(float64(users))
	SnapshotItems.Set(float64(items))
}
