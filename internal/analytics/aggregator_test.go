// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package analytics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/smartchoice/internal/metrics"
)

func TestAggregator_RegisterActivity(t *testing.T) {
	a := NewAggregator(10)

	if got := a.RegisterActivity(); got != 1 {
		t.Errorf("first RegisterActivity() = %d, want 1", got)
	}
	if got := a.RegisterActivity(); got != 2 {
		t.Errorf("second RegisterActivity() = %d, want 2", got)
	}
	for i := 0; i < 20; i++ {
		a.RegisterActivity()
	}
	if got := a.Snapshot().ActiveUsers; got != 10 {
		t.Errorf("ActiveUsers = %d, want ceiling 10", got)
	}
	if got := testutil.ToFloat64(metrics.ActiveUsers); got != 10 {
		t.Errorf("active users gauge = %v, want 10", got)
	}
}

func TestAggregator_DefaultCeiling(t *testing.T) {
	a := NewAggregator(0)
	for i := 0; i < 25; i++ {
		a.RegisterActivity()
	}
	if got := a.Snapshot().ActiveUsers; got != DefaultActiveUsersCeiling {
		t.Errorf("ActiveUsers = %d, want %d", got, DefaultActiveUsersCeiling)
	}
}

func TestAggregator_RecordBatch(t *testing.T) {
	a := NewAggregator(10)
	a.SetTopVariant("variant_a")

	a.RecordBatch(0.8, "variant_b")
	a.RecordBatch(0.4, "")

	got := a.Snapshot()
	if got.TotalRecommendations != 2 {
		t.Errorf("TotalRecommendations = %d, want 2", got.TotalRecommendations)
	}
	if got.AverageConfidence != 0.4 {
		t.Errorf("AverageConfidence = %v, want last batch mean 0.4", got.AverageConfidence)
	}
	if got.TopPerformingVariant != "variant_b" {
		t.Errorf("TopPerformingVariant = %q, want variant_b", got.TopPerformingVariant)
	}
}

func TestAggregator_Concurrent(t *testing.T) {
	a := NewAggregator(1000)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			a.RecordBatch(0.5, "variant_a")
		}()
		go func() {
			defer wg.Done()
			a.RegisterActivity()
		}()
	}
	wg.Wait()

	got := a.Snapshot()
	if got.TotalRecommendations != 100 || got.ActiveUsers != 100 {
		t.Errorf("Snapshot() = %+v", got)
	}
}
