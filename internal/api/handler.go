// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package api

import (
	"errors"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/tomtom215/smartchoice/internal/analytics"
	"github.com/tomtom215/smartchoice/internal/catalog"
	"github.com/tomtom215/smartchoice/internal/logging"
	"github.com/tomtom215/smartchoice/internal/notify"
	"github.com/tomtom215/smartchoice/internal/recommend"
	ws "github.com/tomtom215/smartchoice/internal/websocket"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Smart Choice Engine API"

// Dependencies are the services the handlers read from and write to.
type Dependencies struct {
	Engine     *recommend.Engine
	Catalog    catalog.Provider
	Results    *analytics.ResultStore
	Aggregator *analytics.Aggregator
	Hub        *ws.Hub

	// Notifier receives user_activity events. Defaults to the hub.
	Notifier notify.Notifier

	// AllowedOrigins are matched against the WebSocket Origin header.
	// "*" allows any origin; a missing Origin is always rejected.
	AllowedOrigins []string

	WebSocket ws.ClientConfig

	// ConnectRate limits new WebSocket connections per second. 0 disables it.
	ConnectRate  float64
	ConnectBurst int

	Now func() time.Time
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handler.go: Handler struct, constructor, upgrader
//   - handlers_core.go: health, customers, recommendations
//   - handlers_analytics.go: A/B test results and analytics
//   - handlers_websocket.go: WebSocket upgrade
type Handler struct {
	engine     *recommend.Engine
	catalog    catalog.Provider
	results    *analytics.ResultStore
	aggregator *analytics.Aggregator
	hub        *ws.Hub
	notifier   notify.Notifier

	allowedOrigins []string
	wsConfig       ws.ClientConfig
	admission      *rate.Limiter
	upgrader       gorillaws.Upgrader

	now func() time.Time
}

// NewHandler validates deps and creates a Handler.
func NewHandler(deps Dependencies) (*Handler, error) {
	switch {
	case deps.Engine == nil:
		return nil, errors.New("api: engine is required")
	case deps.Catalog == nil:
		return nil, errors.New("api: catalog is required")
	case deps.Results == nil:
		return nil, errors.New("api: result store is required")
	case deps.Aggregator == nil:
		return nil, errors.New("api: aggregator is required")
	case deps.Hub == nil:
		return nil, errors.New("api: hub is required")
	}

	h := &Handler{
		engine:         deps.Engine,
		catalog:        deps.Catalog,
		results:        deps.Results,
		aggregator:     deps.Aggregator,
		hub:            deps.Hub,
		notifier:       deps.Notifier,
		allowedOrigins: deps.AllowedOrigins,
		wsConfig:       deps.WebSocket,
		now:            deps.Now,
	}
	if h.notifier == nil {
		h.notifier = deps.Hub
	}
	if h.now == nil {
		h.now = time.Now
	}
	if deps.ConnectRate > 0 {
		burst := deps.ConnectBurst
		if burst < 1 {
			burst = 1
		}
		h.admission = rate.NewLimiter(rate.Limit(deps.ConnectRate), burst)
	}
	h.upgrader = gorillaws.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
	return h, nil
}

// checkWebSocketOrigin validates WebSocket connection origins.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Browsers always send Origin on WebSocket handshakes.
	if origin == "" {
		return false
	}

	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Ctx(r.Context()).Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// sanitizeLogValue strips control characters and bounds the length of
// client-supplied values before they are logged.
func sanitizeLogValue(s string) string {
	const maxLen = 200
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		out = append(out, r)
		if len(out) == maxLen {
			break
		}
	}
	return string(out)
}
