// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/smartchoice/internal/validation"
)

// Validate checks struct tags first, then the cross-field rules.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	validators := []func() error{
		c.validateSecurity,
		c.validateWebSocket,
		c.validateEvents,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q", origin)
		}
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs > 0 && c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

func (c *Config) validateWebSocket() error {
	if c.WebSocket.PongWait <= c.WebSocket.WriteWait {
		return fmt.Errorf("WS_PONG_WAIT (%s) must exceed WS_WRITE_WAIT (%s)",
			c.WebSocket.PongWait, c.WebSocket.WriteWait)
	}
	if c.WebSocket.ConnectRate > 0 && c.WebSocket.ConnectBurst < 1 {
		return fmt.Errorf("WS_CONNECT_BURST must be at least 1 when WS_CONNECT_RATE is set")
	}
	return nil
}

func (c *Config) validateEvents() error {
	if c.Events.Transport != TransportNATS {
		return nil
	}
	if c.Events.NATS.EmbeddedServer {
		if c.Events.NATS.Port == 0 {
			return fmt.Errorf("NATS_PORT is required when NATS_EMBEDDED=true")
		}
		return nil
	}
	if c.Events.NATS.URL == "" {
		return fmt.Errorf("NATS_URL is required when EVENTS_TRANSPORT=nats")
	}
	if !strings.HasPrefix(c.Events.NATS.URL, "nats://") && !strings.HasPrefix(c.Events.NATS.URL, "tls://") {
		return fmt.Errorf("NATS_URL must use nats:// or tls:// scheme, got %q", c.Events.NATS.URL)
	}
	return nil
}
