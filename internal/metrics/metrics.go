// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipeflix_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swipeflix_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipeflix_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipeflix_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"limiter"}, // "ip", "swipe"
	)

	// Swipe Metrics
	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipeflix_swipes_total",
			Help: "Total number of recorded swipes",
		},
		[]string{"swipe_type"},
	)

	LedgerUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipeflix_ledger_users",
			Help: "Number of users with at least one recorded swipe",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipeflix_recommendations_total",
			Help: "Total number of recommendation responses",
		},
		[]string{"state", "source"}, // state: cold|warm, source: model|cache|fallback
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swipeflix_recommendation_duration_seconds",
			Help:    "Time to produce a recommendation list",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"state"},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipeflix_recommendation_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"reason"},
	)

	// Result Cache Metrics
	RecommendCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipeflix_recommend_cache_entries",
			Help: "Current number of cached recommendation lists (memory backend)",
		},
	)

	RecommendCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swipeflix_recommend_cache_evictions_total",
			Help: "Total number of expired cache entries evicted",
		},
	)

	// Model and Catalog Metrics
	ModelBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipeflix_model_build_duration_seconds",
			Help: "Duration of the last similarity model build",
		},
	)

	CatalogSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "swipeflix_catalog_size",
			Help: "Size of the loaded catalog",
		},
		[]string{"kind"}, // "items", "users", "ratings"
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the named limiter.
func RecordRateLimitHit(limiter string) {
	APIRateLimitHits.WithLabelValues(limiter).Inc()
}

// RecordSwipe records one accepted swipe.
func RecordSwipe(swipeType string) {
	SwipesTotal.WithLabelValues(swipeType).Inc()
}

// RecordRecommendation records a served recommendation list.
func RecordRecommendation(state, source string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(state, source).Inc()
	RecommendationDuration.WithLabelValues(state).Observe(duration.Seconds())
}

// RecordRecommendationError records a failed recommendation request.
func RecordRecommendationError(reason string) {
	RecommendationErrors.WithLabelValues(reason).Inc()
}

// RecordCacheEvictions adds n evicted cache entries.
func RecordCacheEvictions(n int) {
	if n > 0 {
		RecommendCacheEvictions.Add(float64(n))
	}
}

// UpdateEngineGauges refreshes the gauges derived from engine status.
func UpdateEngineGauges(ledgerUsers, cacheEntries int) {
	LedgerUsers.Set(float64(ledgerUsers))
	RecommendCacheEntries.Set(float64(cacheEntries))
}

// RecordCatalog records the loaded catalog size and model build time.
func RecordCatalog(items, users, ratings int, buildDuration time.Duration) {
	CatalogSize.WithLabelValues("items").Set(float64(items))
	CatalogSize.WithLabelValues("users").Set(float64(users))
	CatalogSize.WithLabelValues("ratings").Set(float64(ratings))
	ModelBuildDuration.Set(buildDuration.Seconds())
}
