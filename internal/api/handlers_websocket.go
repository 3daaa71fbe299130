// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package api

import (
	"net/http"

	"github.com/tomtom215/smartchoice/internal/logging"
	"github.com/tomtom215/smartchoice/internal/metrics"
	ws "github.com/tomtom215/smartchoice/internal/websocket"
)

// WebSocket handles GET /ws. Admitted connections are subscribed to the hub
// and receive a system_metrics frame followed by every broadcast event.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.admission != nil && !h.admission.Allow() {
		metrics.WSUpgradesRejected.WithLabelValues("rate_limited").Inc()
		respondError(w, http.StatusTooManyRequests, MsgTooManyRequests)
		return
	}
	if !h.checkWebSocketOrigin(r) {
		metrics.WSUpgradesRejected.WithLabelValues("origin").Inc()
		respondError(w, http.StatusForbidden, "Origin not allowed")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		metrics.WSUpgradesRejected.WithLabelValues("handshake").Inc()
		logging.Ctx(r.Context()).Debug().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn, h.wsConfig)
	client.Start()
	logging.Ctx(r.Context()).Debug().Uint64("client_id", client.ID()).Msg("WebSocket client connected")
}
