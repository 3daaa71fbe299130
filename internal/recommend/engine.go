// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/smartchoice/internal/catalog"
	"github.com/tomtom215/smartchoice/internal/metrics"
	"github.com/tomtom215/smartchoice/internal/models"
	"github.com/tomtom215/smartchoice/internal/notify"
)

// ResultRecorder logs generated batches and ranks variants.
type ResultRecorder interface {
	Record(result models.ABTestResult)
	BestVariant(variants []Variant) VariantID
}

// MetricsRecorder receives the live system metrics update for each batch.
type MetricsRecorder interface {
	RecordBatch(avgConfidence float64, topVariant string)
}

// Deps are the collaborators of an Engine. Catalog and Registry are required;
// the rest default to no-ops.
type Deps struct {
	Catalog  catalog.Provider
	Registry *VariantRegistry
	Results  ResultRecorder
	Metrics  MetricsRecorder
	Notifier notify.Notifier
	Rand     RandSource
	Logger   zerolog.Logger
	Now      func() time.Time
}

// Result is one generated batch.
type Result struct {
	Variant         VariantID
	Recommendations []models.Recommendation
	GeneratedAt     time.Time
}

// Engine produces ranked recommendations. Safe for concurrent use when its
// dependencies are.
type Engine struct {
	cfg      Config
	catalog  catalog.Provider
	registry *VariantRegistry
	results  ResultRecorder
	metrics  MetricsRecorder
	notifier notify.Notifier
	rng      RandSource
	logger   zerolog.Logger
	now      func() time.Time
}

// NewEngine validates cfg and wires the engine.
func NewEngine(cfg Config, deps Deps) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if deps.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if deps.Registry == nil || deps.Registry.Len() == 0 {
		return nil, ErrEmptyRegistry
	}

	e := &Engine{
		cfg:      cfg,
		catalog:  deps.Catalog,
		registry: deps.Registry,
		results:  deps.Results,
		metrics:  deps.Metrics,
		notifier: deps.Notifier,
		rng:      deps.Rand,
		logger:   deps.Logger.With().Str("component", "recommend").Logger(),
		now:      deps.Now,
	}
	if e.results == nil {
		e.results = discardResults{}
	}
	if e.metrics == nil {
		e.metrics = discardMetrics{}
	}
	if e.notifier == nil {
		e.notifier = notify.Discard
	}
	if e.rng == nil {
		e.rng = NewRandSource(0)
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e, nil
}

// Registry returns the variant registry.
func (e *Engine) Registry() *VariantRegistry {
	return e.registry
}

// Generate ranks the catalog for one customer. variantHint selects a variant
// by ID; empty or unknown hints pick one at random.
//
// An unknown customer yields an empty, non-nil slice and ErrCustomerNotFound
// without recording anything.
func (e *Engine) Generate(ctx context.Context, customerID int, variantHint string) (Result, error) {
	start := time.Now()

	customer, ok := e.catalog.Customer(customerID)
	if !ok {
		metrics.RecommendationMisses.Inc()
		return Result{Recommendations: []models.Recommendation{}},
			fmt.Errorf("customer %d: %w", customerID, ErrCustomerNotFound)
	}

	variant := e.registry.Resolve(variantHint, e.rng)
	batch := e.score(&customer, variant)
	generatedAt := e.now()

	if len(batch) > 0 {
		e.record(ctx, customerID, variant, batch, generatedAt, time.Since(start))
	}

	e.logger.Debug().
		Int("customer_id", customerID).
		Str("variant", string(variant.ID)).
		Int("count", len(batch)).
		Dur("duration", time.Since(start)).
		Msg("Generated recommendations")

	return Result{
		Variant:         variant.ID,
		Recommendations: batch,
		GeneratedAt:     generatedAt,
	}, nil
}

type scored struct {
	rec   models.Recommendation
	score float64
}

func (e *Engine) score(customer *models.Customer, variant Variant) []models.Recommendation {
	products := e.catalog.Products()
	cc := CatalogContext{Customers: e.catalog.Customers()}
	w := variant.Weights

	candidates := make([]scored, 0, len(products))
	for i := range products {
		p := &products[i]

		s := models.SignalScores{
			Collaborative: CollaborativeSignal(customer, p, cc),
			Content:       ContentSignal(customer, p, e.rng),
			Behavioral:    BehavioralSignal(customer, p),
		}

		final := s.Collaborative*w.Collaborative + s.Content*w.Content + s.Behavioral*w.Behavioral
		if e.cfg.Perturbation > 0 {
			final += e.rng.Float64() * e.cfg.Perturbation
		}
		final = clamp01(final)

		candidates = append(candidates, scored{
			score: final,
			rec: models.Recommendation{
				ProductID:           p.ID,
				Name:                p.Name,
				Price:               p.Price,
				Image:               p.Image,
				RecommendationScore: final,
				Confidence:          Confidence(s.Collaborative, s.Content, s.Behavioral),
				Reason:              Reason(customer, s),
				Algorithms:          Algorithms(s),
				Variant:             string(variant.ID),
				Scores:              s,
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := e.cfg.MaxResults
	if n > len(candidates) {
		n = len(candidates)
	}
	batch := make([]models.Recommendation, n)
	for i := 0; i < n; i++ {
		batch[i] = candidates[i].rec
	}
	return batch
}

func (e *Engine) record(ctx context.Context, customerID int, variant Variant, batch []models.Recommendation, at time.Time, took time.Duration) {
	e.results.Record(models.ABTestResult{
		CustomerID:      customerID,
		VariantID:       string(variant.ID),
		Timestamp:       at,
		Recommendations: append([]models.Recommendation(nil), batch...),
	})

	avg := models.AverageConfidence(batch)
	best := e.results.BestVariant(e.registry.Variants())
	e.metrics.RecordBatch(avg, string(best))

	err := e.notifier.Notify(ctx, models.Event{
		Type: models.EventRecommendationGenerated,
		Data: models.RecommendationGeneratedData{
			CustomerID:        customerID,
			Variant:           string(variant.ID),
			Count:             len(batch),
			AverageConfidence: avg,
			Timestamp:         at,
		},
	})
	if err != nil {
		e.logger.Warn().Err(err).Int("customer_id", customerID).Msg("Failed to notify observers")
	}

	confidences := make([]float64, len(batch))
	for i := range batch {
		confidences[i] = batch[i].Confidence
	}
	metrics.RecordRecommendationBatch(string(variant.ID), confidences, took)
}

type discardResults struct{}

func (discardResults) Record(models.ABTestResult) {}

func (discardResults) BestVariant(variants []Variant) VariantID {
	if len(variants) == 0 {
		return ""
	}
	return variants[0].ID
}

type discardMetrics struct{}

func (discardMetrics) RecordBatch(float64, string) {}
