// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package api

import (
	"net/http"

	"github.com/tomtom215/smartchoice/internal/analytics"
	"github.com/tomtom215/smartchoice/internal/catalog"
	"github.com/tomtom215/smartchoice/internal/models"
	"github.com/tomtom215/smartchoice/internal/recommend"
)

// ABTestSummary is the /api/ab-test-results payload.
type ABTestSummary struct {
	Variants           []analytics.VariantPerformance `json:"variants"`
	TotalTests         int                            `json:"totalTests"`
	RecommendedVariant recommend.VariantID            `json:"recommendedVariant"`
}

// AnalyticsData is the /api/analytics payload: the live system metrics plus
// catalog statistics.
type AnalyticsData struct {
	models.SystemMetrics
	TotalCustomers       int      `json:"totalCustomers"`
	TotalProducts        int      `json:"totalProducts"`
	AvgBehaviorScore     float64  `json:"avgBehaviorScore"`
	TopSegments          []string `json:"topSegments"`
	WebSocketConnections int      `json:"websocketConnections"`
	ABTestsRunning       int      `json:"abTestsRunning"`
}

// ABTestResults handles GET /api/ab-test-results.
func (h *Handler) ABTestResults(w http.ResponseWriter, r *http.Request) {
	perf := h.results.VariantPerformance(h.engine.Registry().Variants())
	respondData(w, ABTestSummary{
		Variants:           perf,
		TotalTests:         h.results.TotalTests(),
		RecommendedVariant: analytics.Best(perf),
	})
}

// Analytics handles GET /api/analytics.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	customers := h.catalog.Customers()
	respondData(w, AnalyticsData{
		SystemMetrics:        h.aggregator.Snapshot(),
		TotalCustomers:       len(customers),
		TotalProducts:        len(h.catalog.Products()),
		AvgBehaviorScore:     catalog.AverageBehaviorScore(customers),
		TopSegments:          catalog.Segments(customers),
		WebSocketConnections: h.hub.ClientCount(),
		ABTestsRunning:       h.engine.Registry().Len(),
	})
}
