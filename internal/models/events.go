// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package models

import "time"

// EventType identifies a real-time message pushed to observers.
type EventType string

const (
	EventSystemMetrics           EventType = "system_metrics"
	EventRecommendationGenerated EventType = "recommendation_generated"
	EventUserActivity            EventType = "user_activity"
)

// Event is the frame sent to WebSocket observers: {"type": ..., "data": ...}.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// SystemMetrics is the shared live metrics snapshot.
type SystemMetrics struct {
	TotalRecommendations int64   `json:"totalRecommendations"`
	ActiveUsers          int     `json:"activeUsers"`
	AverageConfidence    float64 `json:"averageConfidence"`
	TopPerformingVariant string  `json:"topPerformingVariant"`
}

// RecommendationGeneratedData is the payload of EventRecommendationGenerated.
type RecommendationGeneratedData struct {
	CustomerID        int       `json:"customerId"`
	Variant           string    `json:"variant"`
	Count             int       `json:"count"`
	AverageConfidence float64   `json:"averageConfidence"`
	Timestamp         time.Time `json:"timestamp"`
}

// UserActivityData is the payload of EventUserActivity.
type UserActivityData struct {
	Action      string    `json:"action"`
	ActiveUsers int       `json:"activeUsers"`
	Timestamp   time.Time `json:"timestamp"`
}

// ActionCustomersViewed is the user_activity action for a catalog listing.
const ActionCustomersViewed = "customers_viewed"

// NewSystemMetricsEvent wraps a snapshot as an event.
func NewSystemMetricsEvent(m SystemMetrics) Event {
	return Event{Type: EventSystemMetrics, Data: m}
}
