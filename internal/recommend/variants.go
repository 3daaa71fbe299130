// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import (
	"fmt"
	"math"
)

// VariantID identifies an A/B test variant.
type VariantID string

// The built-in variants.
const (
	VariantCollaborative VariantID = "variant_a"
	VariantContent       VariantID = "variant_b"
	VariantBehavioral    VariantID = "variant_c"
)

// weightTolerance bounds the allowed drift of a weight sum from 1.0.
const weightTolerance = 1e-9

// Weights combine the three signals into a final score.
type Weights struct {
	Collaborative float64 `json:"collaborative"`
	Content       float64 `json:"content"`
	Behavioral    float64 `json:"behavioral"`
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return w.Collaborative + w.Content + w.Behavioral
}

// Validate checks that weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Collaborative < 0 || w.Content < 0 || w.Behavioral < 0 {
		return fmt.Errorf("%w: negative weight in %+v", ErrInvalidWeights, w)
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: sum is %v, want 1.0", ErrInvalidWeights, sum)
	}
	return nil
}

// Variant is a named weighting of the three signals.
type Variant struct {
	ID          VariantID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Weights     Weights   `json:"weights"`
}

// DefaultVariants returns the three built-in variants in registration order.
func DefaultVariants() []Variant {
	return []Variant{
		{
			ID:          VariantCollaborative,
			Name:        "Collaborative Focus",
			Description: "Leans on customers with similar taste",
			Weights:     Weights{Collaborative: 0.6, Content: 0.25, Behavioral: 0.15},
		},
		{
			ID:          VariantContent,
			Name:        "Content Focus",
			Description: "Leans on category, rating and purchase-history match",
			Weights:     Weights{Collaborative: 0.25, Content: 0.6, Behavioral: 0.15},
		},
		{
			ID:          VariantBehavioral,
			Name:        "Behavioral Focus",
			Description: "Leans on purchase frequency, order value and price fit",
			Weights:     Weights{Collaborative: 0.25, Content: 0.25, Behavioral: 0.5},
		},
	}
}

// VariantRegistry is an immutable, ordered set of variants.
type VariantRegistry struct {
	variants []Variant
	index    map[VariantID]int
}

// NewVariantRegistry validates and registers variants in the given order.
func NewVariantRegistry(variants ...Variant) (*VariantRegistry, error) {
	if len(variants) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &VariantRegistry{
		variants: make([]Variant, 0, len(variants)),
		index:    make(map[VariantID]int, len(variants)),
	}
	for _, v := range variants {
		if v.ID == "" {
			return nil, fmt.Errorf("variant %q: empty id", v.Name)
		}
		if _, dup := r.index[v.ID]; dup {
			return nil, fmt.Errorf("variant %s: %w", v.ID, ErrDuplicateVariant)
		}
		if err := v.Weights.Validate(); err != nil {
			return nil, fmt.Errorf("variant %s: %w", v.ID, err)
		}
		r.index[v.ID] = len(r.variants)
		r.variants = append(r.variants, v)
	}
	return r, nil
}

// Variants returns the variants in registration order.
func (r *VariantRegistry) Variants() []Variant {
	return append([]Variant(nil), r.variants...)
}

// Len returns the number of registered variants.
func (r *VariantRegistry) Len() int {
	return len(r.variants)
}

// Lookup returns the variant with the given ID.
func (r *VariantRegistry) Lookup(id VariantID) (Variant, bool) {
	i, ok := r.index[id]
	if !ok {
		return Variant{}, false
	}
	return r.variants[i], true
}

// Resolve returns the variant named by hint, or a uniformly random variant
// when hint is empty or unknown. It never fails.
func (r *VariantRegistry) Resolve(hint string, rng RandSource) Variant {
	if v, ok := r.Lookup(VariantID(hint)); ok {
		return v
	}
	i := int(rng.Float64() * float64(len(r.variants)))
	if i >= len(r.variants) {
		i = len(r.variants) - 1
	}
	return r.variants[i]
}
