// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: request and correlation IDs in the context and X-Request-ID header
  - PrometheusMetrics: request count, latency and in-flight gauge per route pattern
  - RequestLogger: one structured zerolog line per request
  - SecurityHeaders: conservative headers for JSON responses

All middleware use the chi signature func(http.Handler) http.Handler and
preserve http.Hijacker on the response writer, so they can wrap the
WebSocket endpoint.

Usage:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)

Metrics are labeled by chi route pattern ("/api/recommendations/{customerId}")
rather than raw path, which keeps label cardinality bounded.
*/
package middleware
