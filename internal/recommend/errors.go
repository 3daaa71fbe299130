// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import "errors"

var (
	// ErrCustomerNotFound is returned by Generate for an unknown customer ID.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrEmptyRegistry is returned when a registry is built without variants.
	ErrEmptyRegistry = errors.New("variant registry is empty")

	// ErrDuplicateVariant is returned when two variants share an ID.
	ErrDuplicateVariant = errors.New("duplicate variant id")

	// ErrInvalidWeights is returned for negative weights or weights that do not sum to 1.
	ErrInvalidWeights = errors.New("invalid variant weights")
)
