// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package analytics keeps the in-memory A/B test log and the live system
// metrics snapshot.
//
// ResultStore is an append-only log of recommendation batches. Per-variant
// performance is derived on demand: the log is copied under a read lock and
// aggregated outside it, so readers never block writers for long.
//
// Aggregator holds the small set of counters pushed to WebSocket observers
// (total recommendations, active users, last batch confidence, top variant).
// It mirrors the active user gauge into Prometheus.
//
// Both types are safe for concurrent use. Nothing is persisted; a restart
// starts from an empty log.
package analytics
