// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

/*
Package api serves the Smart Choice Engine HTTP interface.

Routes:

	GET /health                              liveness plus live system metrics
	GET /api/customers                       public customer list (registers activity)
	GET /api/recommendations/{customerId}    ranked recommendations, ?variant= pins a variant
	GET /api/ab-test-results                 per-variant performance
	GET /api/analytics                       catalog and engine statistics
	GET /ws                                  WebSocket event stream
	GET /metrics                             Prometheus exposition

Every JSON body carries a boolean success field. Errors are reported as
{"success": false, "error": "<message>"}.

The router is built on chi with request IDs, structured request logging,
Prometheus instrumentation, CORS and per-IP rate limiting (httprate).
Handler panics are converted to 500 responses by Recoverer.
*/
package api
