// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package eventbus decouples event producers from the WebSocket hub with a
// Watermill publisher/subscriber pair.
//
// # Transports
//
//   - gochannel: in-process Watermill GoChannel. Useful for exercising the bus
//     path in a single binary.
//   - nats: Watermill NATS (core NATS, JetStream disabled). Several API
//     instances can share one NATS server so every dashboard sees every event.
//     An embedded nats-server can be started in-process for development.
//
// The "direct" transport in configuration bypasses this package; producers
// notify the hub directly.
//
// # Flow
//
//	engine ──Notify──▶ Bus.Notify ──breaker──▶ Publisher ──topic──▶ Subscriber ──▶ Relay ──▶ Hub.NotifyFrame
//
// Bus implements notify.Notifier. Each event is serialized once with
// goccy/go-json and published as a Watermill message with a UUID. Publishing
// runs inside a gobreaker circuit breaker, so a dead broker fails fast
// instead of stalling request handlers.
//
// Relay is a suture service that subscribes to the topic and forwards each
// payload unchanged to the hub. Messages are acked after forwarding;
// delivery to browsers is best-effort regardless.
package eventbus
