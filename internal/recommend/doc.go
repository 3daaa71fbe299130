// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package recommend implements the multi-signal recommendation engine.
//
// # Scoring
//
// Every customer/product pair receives three independent signals in [0, 1]:
//
//   - Collaborative: how much customers with overlapping favorite categories
//     (weighted by their own behavior score) resemble this customer
//   - Content: category match, rating, popularity and purchase-history overlap
//   - Behavioral: purchase frequency, order value, engagement and price fit
//
// A Variant supplies the weights that combine the signals into a final score.
// A small bounded random perturbation is added for diversification and the
// catalog is sorted stably, so products with equal scores keep catalog order.
//
// # A/B Variants
//
// VariantRegistry holds the closed set of variants. Requests may name a
// variant; unknown or missing names fall back to a uniformly random member.
// Every non-empty batch is logged as an ABTestResult so variants can be
// compared by average confidence.
//
// # Determinism
//
// All randomness flows through an injected RandSource. Tests pass a seeded
// source (or a fixed stub) and can assert exact scores; production seeds from
// recommend.seed, or from the clock when it is zero.
//
// # Side Effects
//
// Generate records the batch, updates system metrics and notifies observers.
// Unknown customers return ErrCustomerNotFound with no side effects.
package recommend
