// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

/*
Package models defines the data structures shared by the Smart Choice Engine.

Catalog records:
  - Customer: a shopper profile with favorite categories, purchase history and a behavior score
  - PublicCustomer: the subset of Customer fields exposed by /api/customers
  - Product: a catalog item with price, rating and popularity

Derived values:
  - Recommendation: one scored product for one customer, created per request
  - SignalScores: the raw collaborative, content and behavioral signals behind a recommendation
  - SystemMetrics: the live counters shown on dashboards

Real-time events:
  - Event: a typed payload pushed to WebSocket observers
  - RecommendationGeneratedData, UserActivityData: event payloads

JSON tags use camelCase to match the dashboard frontend.
*/
package models
