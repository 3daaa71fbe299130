// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/smartchoice/internal/logging"
	"github.com/tomtom215/smartchoice/internal/models"
	"github.com/tomtom215/smartchoice/internal/recommend"
)

// HealthResponse is the /health body.
type HealthResponse struct {
	Status           string               `json:"status"`
	Service          string               `json:"service"`
	Timestamp        time.Time            `json:"timestamp"`
	WebSocketClients int                  `json:"websocketClients"`
	SystemMetrics    models.SystemMetrics `json:"systemMetrics"`
}

// RecommendationsResponse is the /api/recommendations/{customerId} body.
type RecommendationsResponse struct {
	Success    bool                    `json:"success"`
	CustomerID int                     `json:"customerId"`
	Data       []models.Recommendation `json:"data"`
	Generated  time.Time               `json:"generated"`
	Variant    string                  `json:"variant"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:           "healthy",
		Service:          ServiceName,
		Timestamp:        h.now().UTC(),
		WebSocketClients: h.hub.ClientCount(),
		SystemMetrics:    h.aggregator.Snapshot(),
	})
}

// Customers handles GET /api/customers. Each call counts as dashboard
// activity and is announced to live observers.
func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	customers := h.catalog.Customers()
	public := make([]models.PublicCustomer, len(customers))
	for i := range customers {
		public[i] = customers[i].Public()
	}

	active := h.aggregator.RegisterActivity()
	event := models.Event{
		Type: models.EventUserActivity,
		Data: models.UserActivityData{
			Action:      models.ActionCustomersViewed,
			ActiveUsers: active,
			Timestamp:   h.now().UTC(),
		},
	}
	if err := h.notifier.Notify(r.Context(), event); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to notify user activity")
	}

	respondData(w, public)
}

// Recommendations handles GET /api/recommendations/{customerId}.
// The optional variant query parameter pins the A/B variant; unknown values
// fall back to random assignment. An unknown customer yields an empty list.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "customerId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, MsgInvalidCustomerID)
		return
	}

	result, err := h.engine.Generate(r.Context(), customerID, r.URL.Query().Get("variant"))
	switch {
	case errors.Is(err, recommend.ErrCustomerNotFound):
		logging.Ctx(r.Context()).Debug().Int("customer_id", customerID).Msg("Recommendations requested for unknown customer")
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Int("customer_id", customerID).Msg("Failed to generate recommendations")
		respondError(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	generated := result.GeneratedAt
	if generated.IsZero() {
		generated = h.now()
	}
	recs := result.Recommendations
	if recs == nil {
		recs = []models.Recommendation{}
	}

	respondJSON(w, http.StatusOK, RecommendationsResponse{
		Success:    true,
		CustomerID: customerID,
		Data:       recs,
		Generated:  generated.UTC(),
		Variant:    string(result.Variant),
	})
}
