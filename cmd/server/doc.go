// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package main is the entry point for the Smart Choice Engine server.
//
// The server scores a product catalog for each customer with three weighted
// heuristics, assigns every request to an A/B test variant and pushes live
// events to dashboards over WebSocket.
//
// # Startup Order
//
//  1. Configuration: defaults, optional YAML file, environment (koanf)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: built-in seed or CATALOG_SEED_PATH
//  4. Variant registry, result store, metrics aggregator, WebSocket hub
//  5. Event transport: direct (hub), gochannel or nats (Watermill bus + relay)
//  6. Recommendation engine and HTTP router
//  7. Supervisor tree: events, messaging and api layers
//
// # Event Transports
//
//	EVENTS_TRANSPORT=direct      engine -> hub
//	EVENTS_TRANSPORT=gochannel   engine -> Watermill GoChannel -> relay -> hub
//	EVENTS_TRANSPORT=nats        engine -> NATS -> relay -> hub (every instance)
//
// EVENTS_MIRROR=true on a bus transport delivers to the local hub directly and
// publishes to the bus for other consumers; no relay is started.
//
// With NATS_EMBEDDED=true an in-process nats-server is started and the bus
// connects to it.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree: the HTTP server drains,
// the hub closes every client and the event bus is closed.
package main
