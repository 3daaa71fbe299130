// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/smartchoice/internal/logging"
)

// Error messages returned to clients.
const (
	MsgInvalidCustomerID = "Invalid customer ID"
	MsgInternalError     = "Internal server error"
	MsgTooManyRequests   = "Too many requests"
	MsgNotFound          = "Not found"
	MsgMethodNotAllowed  = "Method not allowed"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DataResponse wraps a successful payload.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// respondJSON writes body as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"` + MsgInternalError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondData writes a 200 DataResponse.
func respondData(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, DataResponse{Success: true, Data: data})
}

// respondError writes an ErrorResponse.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Success: false, Error: message})
}
