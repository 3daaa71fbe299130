// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package websocket pushes live events to browser dashboards.
//
// # Architecture
//
// The Hub keeps a set of Subscribers. A Subscriber is anything that accepts a
// pre-serialized frame without blocking; Client is the gorilla/websocket
// implementation, with one goroutine reading (to service pings and detect
// disconnects) and one writing.
//
//	producer ──Notify──▶ Hub ──Send(frame)──▶ Client.send ──writePump──▶ socket
//
// Every frame is a JSON object {"type": ..., "data": ...}. Frames are
// marshaled once per event with goccy/go-json and shared by all subscribers.
//
// # Delivery
//
// Delivery is best-effort. The subscriber set is copied under a read lock and
// frames are handed over outside it. A subscriber whose buffer is full or
// that has closed is removed; nothing is retried.
//
// New subscribers immediately receive a system_metrics frame built from the
// snapshot function passed to NewHub.
//
// # Message Types
//
//   - system_metrics: live SystemMetrics snapshot
//   - recommendation_generated: one batch was served
//   - user_activity: the customer listing was viewed
//
// Inbound client frames are read and discarded.
//
// # Lifecycle
//
// RunWithContext blocks until its context is canceled and then closes every
// subscriber, so the hub can run under a suture supervisor.
package websocket
