// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package analytics

import (
	"sync"
	"time"

	"github.com/tomtom215/smartchoice/internal/metrics"
	"github.com/tomtom215/smartchoice/internal/models"
	"github.com/tomtom215/smartchoice/internal/recommend"
)

// VariantPerformance summarizes the batches served by one variant.
type VariantPerformance struct {
	ID                recommend.VariantID `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Weights           recommend.Weights   `json:"weights"`
	TestCount         int                 `json:"testCount"`
	AverageConfidence float64             `json:"averageConfidence"`
	LastUsed          *time.Time          `json:"lastUsed"`
}

// ResultStore is the append-only A/B test log.
type ResultStore struct {
	mu      sync.RWMutex
	results []models.ABTestResult
}

// NewResultStore creates an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Record appends one batch. Duplicates are kept.
func (s *ResultStore) Record(result models.ABTestResult) {
	s.mu.Lock()
	s.results = append(s.results, result)
	s.mu.Unlock()

	metrics.ABTestResultsRecorded.WithLabelValues(result.VariantID).Inc()
}

// TotalTests returns the number of logged batches.
func (s *ResultStore) TotalTests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Results returns a copy of the log in insertion order.
func (s *ResultStore) Results() []models.ABTestResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ABTestResult(nil), s.results...)
}

type variantAccumulator struct {
	count         int
	confidenceSum float64
	lastUsed      time.Time
}

// VariantPerformance reports every variant in the given order, including
// variants with no batches. AverageConfidence is the mean of per-batch mean
// confidences.
func (s *ResultStore) VariantPerformance(variants []recommend.Variant) []VariantPerformance {
	snapshot := s.Results()

	acc := make(map[string]*variantAccumulator, len(variants))
	for i := range snapshot {
		r := &snapshot[i]
		a, ok := acc[r.VariantID]
		if !ok {
			a = &variantAccumulator{}
			acc[r.VariantID] = a
		}
		a.count++
		a.confidenceSum += models.AverageConfidence(r.Recommendations)
		if r.Timestamp.After(a.lastUsed) {
			a.lastUsed = r.Timestamp
		}
	}

	out := make([]VariantPerformance, 0, len(variants))
	for _, v := range variants {
		p := VariantPerformance{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Weights:     v.Weights,
		}
		if a, ok := acc[string(v.ID)]; ok && a.count > 0 {
			last := a.lastUsed
			p.TestCount = a.count
			p.AverageConfidence = a.confidenceSum / float64(a.count)
			p.LastUsed = &last
		}
		out = append(out, p)
	}
	return out
}

// BestVariant returns the variant with the highest average confidence. Ties,
// including the all-zero state before any batch, go to the earliest variant.
func (s *ResultStore) BestVariant(variants []recommend.Variant) recommend.VariantID {
	return Best(s.VariantPerformance(variants))
}

// Best picks the highest average confidence from a performance report.
func Best(perf []VariantPerformance) recommend.VariantID {
	if len(perf) == 0 {
		return ""
	}
	best := 0
	for i := 1; i < len(perf); i++ {
		if perf[i].AverageConfidence > perf[best].AverageConfidence {
			best = i
		}
	}
	return perf[best].ID
}
