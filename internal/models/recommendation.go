// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package models

import "time"

// Algorithm tags attached to a recommendation.
const (
	AlgorithmContent       = "CONTENT"
	AlgorithmCollaborative = "COLLABORATIVE"
	AlgorithmBehavioral    = "BEHAVIORAL"
	AlgorithmHybrid        = "HYBRID"
)

// SignalScores holds the three raw signals for one customer/product pair.
type SignalScores struct {
	Collaborative float64 `json:"collaborative"`
	Content       float64 `json:"content"`
	Behavioral    float64 `json:"behavioral"`
}

// Recommendation is one ranked product for one customer.
type Recommendation struct {
	ProductID           int          `json:"productId"`
	Name                string       `json:"name"`
	Price               float64      `json:"price"`
	Image               string       `json:"image,omitempty"`
	RecommendationScore float64      `json:"recommendationScore"`
	Confidence          float64      `json:"confidence"`
	Reason              string       `json:"reason"`
	Algorithms          []string     `json:"algorithms"`
	Variant             string       `json:"variant"`
	Scores              SignalScores `json:"scores"`
}

// AverageConfidence returns the mean confidence of a batch, 0 for an empty batch.
func AverageConfidence(batch []Recommendation) float64 {
	if len(batch) == 0 {
		return 0
	}
	var sum float64
	for i := range batch {
		sum += batch[i].Confidence
	}
	return sum / float64(len(batch))
}

// ABTestResult is one logged recommendation batch. Never mutated after creation.
type ABTestResult struct {
	CustomerID      int              `json:"customerId"`
	VariantID       string           `json:"variantId"`
	Timestamp       time.Time        `json:"timestamp"`
	Recommendations []Recommendation `json:"recommendations"`
}
