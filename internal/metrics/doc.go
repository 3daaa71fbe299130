// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package metrics exposes Prometheus instrumentation for the Smart Choice Engine.
//
// Metrics are registered with the default registry through promauto and served
// on /metrics by promhttp. Families:
//
//   - api_*: request counts, latency and in-flight requests (middleware.PrometheusMetrics)
//   - recommendation_*: batches per variant, confidence distribution, latency, misses
//   - ab_test_*: logged A/B batches per variant
//   - active_users: the capped catalog-view gauge
//   - websocket_*: connections, frames sent, pruned subscribers, rejected upgrades
//   - eventbus_*: publish outcomes, relayed frames, circuit breaker state
package metrics
