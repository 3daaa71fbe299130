// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package logging provides zerolog-based structured logging for the Smart Choice Engine.
//
// A single global logger is configured once at startup and shared by every
// component. Components derive child loggers tagged with a component name,
// and request-scoped code logs through Ctx so the request and correlation
// identifiers travel with every line.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("port", 8000).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Delivery failed")
//
//	engineLog := logging.WithComponent("recommend")
//
// # Adapters
//
// Two adapters route third-party logging into the same zerolog output:
//
//   - NewSlogLogger returns a *slog.Logger for sutureslog (supervisor events)
//   - NewWatermillLogger returns a watermill.LoggerAdapter for the event bus
//
// # Configuration
//
// Level and format come from the logging section of the application config
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER environment variables).
package logging
