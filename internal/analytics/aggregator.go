// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package analytics

import (
	"sync"

	"github.com/tomtom215/smartchoice/internal/metrics"
	"github.com/tomtom215/smartchoice/internal/models"
)

// DefaultActiveUsersCeiling caps the active user gauge.
const DefaultActiveUsersCeiling = 10

// Aggregator holds the live SystemMetrics.
type Aggregator struct {
	mu      sync.Mutex
	ceiling int
	state   models.SystemMetrics
}

// NewAggregator creates an aggregator. A non-positive ceiling uses the default.
func NewAggregator(ceiling int) *Aggregator {
	if ceiling <= 0 {
		ceiling = DefaultActiveUsersCeiling
	}
	return &Aggregator{ceiling: ceiling}
}

// RecordBatch counts one batch. AverageConfidence is replaced by the batch
// mean, not folded into a running average.
func (a *Aggregator) RecordBatch(avgConfidence float64, topVariant string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.TotalRecommendations++
	a.state.AverageConfidence = avgConfidence
	if topVariant != "" {
		a.state.TopPerformingVariant = topVariant
	}
}

// SetTopVariant overrides the top performing variant.
func (a *Aggregator) SetTopVariant(id string) {
	a.mu.Lock()
	a.state.TopPerformingVariant = id
	a.mu.Unlock()
}

// RegisterActivity bumps the active user count up to the ceiling and returns
// the new value. The count is never decremented.
func (a *Aggregator) RegisterActivity() int {
	a.mu.Lock()
	if a.state.ActiveUsers < a.ceiling {
		a.state.ActiveUsers++
	}
	n := a.state.ActiveUsers
	a.mu.Unlock()

	metrics.ActiveUsers.Set(float64(n))
	return n
}

// Snapshot returns a copy of the current metrics.
func (a *Aggregator) Snapshot() models.SystemMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
