// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared across the process; it caches struct
// metadata so repeated validation of catalog records and configuration
// sections is cheap. The package registers one custom tag:
//
//   - unit: a float64 in the closed interval [0, 1]
//
// Example:
//
//	type Product struct {
//	    Price      float64 `validate:"gt=0"`
//	    Popularity float64 `validate:"unit"`
//	}
//
//	if err := validation.ValidateStruct(&p); err != nil {
//	    return fmt.Errorf("product %d: %w", p.ID, err)
//	}
package validation
