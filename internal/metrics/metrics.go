// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

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
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIPanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_panics_recovered_total",
			Help: "Total number of handler panics converted to 500 responses",
		},
	)

	// Recommendation Metrics
	RecommendationBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_batches_total",
			Help: "Total number of recommendation batches generated",
		},
		[]string{"variant"},
	)

	RecommendationItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_items_total",
			Help: "Total number of individual recommendations returned",
		},
		[]string{"variant"},
	)

	RecommendationConfidence = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_confidence",
			Help:    "Confidence of returned recommendations",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
		[]string{"variant"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to score and rank the catalog for one customer",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendationMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_customer_not_found_total",
			Help: "Total number of requests for unknown customers",
		},
	)

	// A/B Test Metrics
	ABTestResultsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_test_results_recorded_total",
			Help: "Total number of A/B test batches logged",
		},
		[]string{"variant"},
	)

	ActiveUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_users",
			Help: "Capped catalog-view gauge shown on the live dashboard",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of subscribed WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of frames queued to WebSocket subscribers",
		},
		[]string{"type"},
	)

	WSSubscribersPruned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_subscribers_pruned_total",
			Help: "Total number of subscribers removed after a failed delivery",
		},
		[]string{"reason"},
	)

	WSUpgradesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_upgrades_rejected_total",
			Help: "Total number of rejected WebSocket upgrade attempts",
		},
		[]string{"reason"},
	)

	// Event Bus Metrics
	EventBusPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_published_total",
			Help: "Total number of events published to the event bus",
		},
		[]string{"transport", "result"},
	)

	EventBusRelayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventbus_relayed_total",
			Help: "Total number of bus messages relayed to the broadcast hub",
		},
	)

	EventBusCircuitState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "eventbus_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendationBatch records one generated batch.
func RecordRecommendationBatch(variant string, confidences []float64, duration time.Duration) {
	RecommendationBatches.WithLabelValues(variant).Inc()
	RecommendationItems.WithLabelValues(variant).Add(float64(len(confidences)))
	hist := RecommendationConfidence.WithLabelValues(variant)
	for _, c := range confidences {
		hist.Observe(c)
	}
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordEventPublish records a bus publish outcome.
func RecordEventPublish(transport string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventBusPublished.WithLabelValues(transport, result).Inc()
}
