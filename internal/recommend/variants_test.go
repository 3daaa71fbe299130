// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import (
	"errors"
	"math"
	"testing"
)

func defaultRegistry(t *testing.T) *VariantRegistry {
	t.Helper()
	r, err := NewVariantRegistry(DefaultVariants()...)
	if err != nil {
		t.Fatalf("NewVariantRegistry() error = %v", err)
	}
	return r
}

func TestDefaultVariants_WeightsSumToOne(t *testing.T) {
	for _, v := range DefaultVariants() {
		if sum := v.Weights.Sum(); math.Abs(sum-1) > 1e-9 {
			t.Errorf("variant %s weights sum to %v", v.ID, sum)
		}
	}
}

func TestVariantRegistry_Order(t *testing.T) {
	r := defaultRegistry(t)

	want := []VariantID{VariantCollaborative, VariantContent, VariantBehavioral}
	got := r.Variants()
	if len(got) != len(want) {
		t.Fatalf("Variants() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("Variants()[%d] = %s, want %s", i, got[i].ID, want[i])
		}
	}

	// Callers cannot mutate the registry through the returned slice.
	got[0].Name = "mutated"
	if v, _ := r.Lookup(VariantCollaborative); v.Name == "mutated" {
		t.Error("Variants() exposed internal storage")
	}
}

func TestVariantRegistry_Resolve(t *testing.T) {
	r := defaultRegistry(t)

	tests := []struct {
		name string
		hint string
		rng  float64
		want VariantID
	}{
		{"known id", "variant_b", 0.99, VariantContent},
		{"known id ignores rand", "variant_c", 0, VariantBehavioral},
		{"empty hint low rand", "", 0, VariantCollaborative},
		{"empty hint mid rand", "", 0.5, VariantContent},
		{"empty hint high rand", "", 0.999, VariantBehavioral},
		{"unknown hint falls back", "variant_z", 0.4, VariantContent},
		{"rand of one clamps", "nope", 1.0, VariantBehavioral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.hint, fixedRand(tt.rng))
			if got.ID != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.hint, got.ID, tt.want)
			}
		})
	}
}

func TestVariantRegistry_ResolveAlwaysMember(t *testing.T) {
	r := defaultRegistry(t)
	rng := NewRandSource(42)
	for i := 0; i < 500; i++ {
		v := r.Resolve("", rng)
		if _, ok := r.Lookup(v.ID); !ok {
			t.Fatalf("Resolve returned unregistered variant %s", v.ID)
		}
	}
}

func TestNewVariantRegistry_Errors(t *testing.T) {
	valid := Weights{Collaborative: 0.5, Content: 0.5}

	tests := []struct {
		name     string
		variants []Variant
		wantErr  error
	}{
		{"empty", nil, ErrEmptyRegistry},
		{
			name:     "duplicate id",
			variants: []Variant{{ID: "a", Weights: valid}, {ID: "a", Weights: valid}},
			wantErr:  ErrDuplicateVariant,
		},
		{
			name:     "weights below one",
			variants: []Variant{{ID: "a", Weights: Weights{Collaborative: 0.5, Content: 0.4}}},
			wantErr:  ErrInvalidWeights,
		},
		{
			name:     "negative weight",
			variants: []Variant{{ID: "a", Weights: Weights{Collaborative: 1.5, Content: -0.5}}},
			wantErr:  ErrInvalidWeights,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVariantRegistry(tt.variants...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewVariantRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := NewVariantRegistry(Variant{Name: "anonymous", Weights: valid}); err == nil {
		t.Error("expected error for empty variant id")
	}
}
