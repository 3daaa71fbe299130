// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package catalog provides read-only access to customers and products.
//
// The engine depends only on the CustomerCatalog and ProductCatalog
// interfaces. Memory is the production implementation: an immutable
// in-memory catalog loaded from YAML, either the built-in seed or a file
// named by catalog.seed_path. Every record is validated on load, so a
// malformed seed fails at startup rather than producing NaN scores later.
package catalog
