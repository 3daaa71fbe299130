// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package config loads and validates Smart Choice Engine configuration.
//
// Configuration is layered with Koanf v2, later layers overriding earlier ones:
//
//  1. Defaults from defaultConfig()
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/smartchoice/config.yaml)
//  3. Environment variables (explicit mapping table, unknown variables ignored)
//
// Example config.yaml:
//
//	server:
//	  port: 8000
//	security:
//	  cors_origins: ["http://localhost:8090"]
//	events:
//	  transport: nats
//	  nats:
//	    embedded_server: true
//
// Validation runs after unmarshalling: struct tags via go-playground/validator
// followed by cross-field checks that tags cannot express.
package config
