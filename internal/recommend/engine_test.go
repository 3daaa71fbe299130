// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/smartchoice/internal/catalog"
	"github.com/tomtom215/smartchoice/internal/metrics"
	"github.com/tomtom215/smartchoice/internal/models"
	"github.com/tomtom215/smartchoice/internal/notify"
)

// mockRecorder implements ResultRecorder for testing.
type mockRecorder struct {
	mu      sync.Mutex
	results []models.ABTestResult
	best    VariantID
}

func (m *mockRecorder) Record(r models.ABTestResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

func (m *mockRecorder) BestVariant([]Variant) VariantID {
	return m.best
}

// mockMetrics implements MetricsRecorder for testing.
type mockMetrics struct {
	mu      sync.Mutex
	batches []float64
	top     []string
}

func (m *mockMetrics) RecordBatch(avg float64, top string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, avg)
	m.top = append(m.top, top)
}

// mockNotifier records events.
type mockNotifier struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (m *mockNotifier) Notify(_ context.Context, ev models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

type engineFixture struct {
	engine   *Engine
	results  *mockRecorder
	metrics  *mockMetrics
	notifier *mockNotifier
}

func newFixture(t *testing.T, cfg Config, cat catalog.Provider, rng RandSource) *engineFixture {
	t.Helper()
	f := &engineFixture{
		results:  &mockRecorder{best: VariantContent},
		metrics:  &mockMetrics{},
		notifier: &mockNotifier{},
	}
	registry, err := NewVariantRegistry(DefaultVariants()...)
	if err != nil {
		t.Fatalf("NewVariantRegistry() error = %v", err)
	}
	f.engine, err = NewEngine(cfg, Deps{
		Catalog:  cat,
		Registry: registry,
		Results:  f.results,
		Metrics:  f.metrics,
		Notifier: f.notifier,
		Rand:     rng,
		Logger:   zerolog.Nop(),
		Now:      func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return f
}

func seedCatalog(t *testing.T) *catalog.Memory {
	t.Helper()
	m, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	return m
}

func TestNewEngine_Errors(t *testing.T) {
	registry, err := NewVariantRegistry(DefaultVariants()...)
	if err != nil {
		t.Fatal(err)
	}
	cat := seedCatalog(t)

	tests := []struct {
		name string
		cfg  Config
		deps Deps
	}{
		{"invalid config", Config{MaxResults: 0}, Deps{Catalog: cat, Registry: registry}},
		{"batch larger than four", Config{MaxResults: 8}, Deps{Catalog: cat, Registry: registry}},
		{"missing catalog", DefaultConfig(), Deps{Registry: registry}},
		{"missing registry", DefaultConfig(), Deps{Catalog: cat}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.cfg, tt.deps); err == nil {
				t.Error("NewEngine() expected error")
			}
		})
	}
}

func TestNewEngine_OptionalDeps(t *testing.T) {
	registry, _ := NewVariantRegistry(DefaultVariants()...)
	e, err := NewEngine(DefaultConfig(), Deps{Catalog: seedCatalog(t), Registry: registry})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	res, err := e.Generate(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(res.Recommendations) == 0 {
		t.Error("expected recommendations with default deps")
	}
}

func TestGenerate_KnownCustomers(t *testing.T) {
	cat := seedCatalog(t)
	f := newFixture(t, DefaultConfig(), cat, NewRandSource(7))

	for _, c := range cat.Customers() {
		for _, v := range []string{"", "variant_a", "variant_b", "variant_c", "bogus"} {
			res, err := f.engine.Generate(context.Background(), c.ID, v)
			if err != nil {
				t.Fatalf("Generate(%d, %q) error = %v", c.ID, v, err)
			}
			recs := res.Recommendations
			if len(recs) == 0 || len(recs) > 4 {
				t.Fatalf("Generate(%d) returned %d recommendations", c.ID, len(recs))
			}
			for i, r := range recs {
				if r.RecommendationScore < 0 || r.RecommendationScore > 1 {
					t.Errorf("score %v out of range", r.RecommendationScore)
				}
				if r.Confidence < 0 || r.Confidence > 1 {
					t.Errorf("confidence %v out of range", r.Confidence)
				}
				if i > 0 && recs[i-1].RecommendationScore < r.RecommendationScore {
					t.Errorf("not sorted at %d: %v < %v", i, recs[i-1].RecommendationScore, r.RecommendationScore)
				}
				if len(r.Algorithms) == 0 {
					t.Error("empty algorithms")
				}
				if r.Reason == "" {
					t.Error("empty reason")
				}
				if r.Variant != string(res.Variant) {
					t.Errorf("recommendation variant %q, batch variant %q", r.Variant, res.Variant)
				}
			}
		}
	}
}

func TestGenerate_VariantHint(t *testing.T) {
	f := newFixture(t, DefaultConfig(), seedCatalog(t), fixedRand(0))

	res, err := f.engine.Generate(context.Background(), 3, "variant_c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Variant != VariantBehavioral {
		t.Errorf("Variant = %s, want %s", res.Variant, VariantBehavioral)
	}
}

func TestGenerate_UnknownCustomer(t *testing.T) {
	f := newFixture(t, DefaultConfig(), seedCatalog(t), fixedRand(0.5))
	missesBefore := testutil.ToFloat64(metrics.RecommendationMisses)

	res, err := f.engine.Generate(context.Background(), 9999, "")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("Generate() error = %v, want ErrCustomerNotFound", err)
	}
	if res.Recommendations == nil || len(res.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want empty non-nil slice", res.Recommendations)
	}
	if res.Variant != "" {
		t.Errorf("Variant = %q, want empty", res.Variant)
	}
	if len(f.results.results) != 0 {
		t.Errorf("recorded %d results, want 0", len(f.results.results))
	}
	if len(f.metrics.batches) != 0 {
		t.Errorf("metrics updated %d times, want 0", len(f.metrics.batches))
	}
	if len(f.notifier.events) != 0 {
		t.Errorf("sent %d events, want 0", len(f.notifier.events))
	}
	if got := testutil.ToFloat64(metrics.RecommendationMisses) - missesBefore; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
}

func TestGenerate_SideEffects(t *testing.T) {
	f := newFixture(t, DefaultConfig(), seedCatalog(t), fixedRand(0.25))
	batchesBefore := testutil.ToFloat64(metrics.RecommendationBatches.WithLabelValues("variant_a"))

	res, err := f.engine.Generate(context.Background(), 1, "variant_a")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(f.results.results) != 1 {
		t.Fatalf("recorded %d results, want 1", len(f.results.results))
	}
	logged := f.results.results[0]
	if logged.CustomerID != 1 || logged.VariantID != "variant_a" {
		t.Errorf("logged result = %+v", logged)
	}
	if len(logged.Recommendations) != len(res.Recommendations) {
		t.Errorf("logged %d recommendations, returned %d", len(logged.Recommendations), len(res.Recommendations))
	}

	avg := models.AverageConfidence(res.Recommendations)
	if len(f.metrics.batches) != 1 || !approxEqual(f.metrics.batches[0], avg) {
		t.Errorf("metrics batches = %v, want [%v]", f.metrics.batches, avg)
	}
	if f.metrics.top[0] != string(VariantContent) {
		t.Errorf("top variant = %q, want store's best %q", f.metrics.top[0], VariantContent)
	}

	if len(f.notifier.events) != 1 {
		t.Fatalf("sent %d events, want 1", len(f.notifier.events))
	}
	ev := f.notifier.events[0]
	if ev.Type != models.EventRecommendationGenerated {
		t.Errorf("event type = %s", ev.Type)
	}
	data, ok := ev.Data.(models.RecommendationGeneratedData)
	if !ok {
		t.Fatalf("event data type = %T", ev.Data)
	}
	if data.CustomerID != 1 || data.Variant != "variant_a" || data.Count != len(res.Recommendations) {
		t.Errorf("event data = %+v", data)
	}
	if !data.Timestamp.Equal(res.GeneratedAt) {
		t.Errorf("event timestamp = %v, want %v", data.Timestamp, res.GeneratedAt)
	}

	if got := testutil.ToFloat64(metrics.RecommendationBatches.WithLabelValues("variant_a")) - batchesBefore; got != 1 {
		t.Errorf("batch counter delta = %v, want 1", got)
	}
}

func TestGenerate_NotifyFailureDoesNotFail(t *testing.T) {
	f := newFixture(t, DefaultConfig(), seedCatalog(t), fixedRand(0.1))
	f.notifier.err = errors.New("bus down")

	res, err := f.engine.Generate(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(res.Recommendations) == 0 {
		t.Error("expected recommendations despite notify failure")
	}
}

func TestGenerate_StableTies(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Solo", AvgOrderValue: 500, BehaviorScore: 0.5, FavoriteCategories: []string{"Gaming"}},
	}
	var products []models.Product
	for id := 1; id <= 6; id++ {
		products = append(products, models.Product{
			ID: id, Name: "Item", Category: "Gaming", Price: 100, Popularity: 0.5, Rating: 4,
		})
	}
	cat, err := catalog.NewMemory(customers, products)
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Perturbation = 0
	f := newFixture(t, cfg, cat, fixedRand(0))

	res, err := f.engine.Generate(context.Background(), 1, "variant_a")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(res.Recommendations) != 4 {
		t.Fatalf("got %d recommendations, want 4", len(res.Recommendations))
	}
	for i, r := range res.Recommendations {
		if r.ProductID != i+1 {
			t.Errorf("position %d: product %d, want %d", i, r.ProductID, i+1)
		}
	}
}

func TestGenerate_MaxResults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResults = 2
	f := newFixture(t, cfg, seedCatalog(t), NewRandSource(1))

	res, err := f.engine.Generate(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(res.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(res.Recommendations))
	}
}

func TestGenerate_ContentVariantFavorsCategoryMatch(t *testing.T) {
	customers := []models.Customer{{
		ID:                 1,
		Name:               "Beauty Fan",
		TotalPurchases:     5,
		AvgOrderValue:      500,
		BehaviorScore:      0.9,
		FavoriteCategories: []string{"Beauty"},
	}}
	products := []models.Product{{
		ID: 1, Name: "Glow Cream", Category: "Beauty", Price: 300, Popularity: 0.8, Rating: 4.5,
	}}
	cat, err := catalog.NewMemory(customers, products)
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}

	content := ContentSignal(&customers[0], &products[0], fixedRand(0))
	if !approxEqual(content, 0.6+0.05+0.08) {
		t.Fatalf("content signal = %v, want 0.73", content)
	}

	cfg := DefaultConfig()
	cfg.Perturbation = 0
	f := newFixture(t, cfg, cat, fixedRand(0))

	score := func(variant string) float64 {
		res, err := f.engine.Generate(context.Background(), 1, variant)
		if err != nil {
			t.Fatalf("Generate(%s) error = %v", variant, err)
		}
		return res.Recommendations[0].RecommendationScore
	}

	b, c := score("variant_b"), score("variant_c")
	if b <= c {
		t.Errorf("content variant score %v <= behavioral variant score %v", b, c)
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	f := newFixture(t, DefaultConfig(), seedCatalog(t), NewRandSource(3))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := f.engine.Generate(context.Background(), id%4+1, ""); err != nil {
				t.Errorf("Generate() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	if len(f.results.results) != 16 {
		t.Errorf("recorded %d results, want 16", len(f.results.results))
	}
}

var _ notify.Notifier = (*mockNotifier)(nil)
