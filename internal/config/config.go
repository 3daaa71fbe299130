// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package config

import (
	"fmt"
	"time"
)

// Event transports understood by the events section.
const (
	TransportDirect    = "direct"
	TransportGoChannel = "gochannel"
	TransportNATS      = "nats"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	WebSocket  WebSocketConfig  `koanf:"websocket"`
	Events     EventsConfig     `koanf:"events"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins" validate:"required,min=1"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings, passed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig selects the customer/product seed.
// An empty SeedPath uses the built-in catalog.
type CatalogConfig struct {
	SeedPath string `koanf:"seed_path"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// Seed for the engine's random source. 0 seeds from the clock.
	Seed int64 `koanf:"seed"`

	// MaxResults caps the number of recommendations per request.
	MaxResults int `koanf:"max_results" validate:"min=1,max=4"`

	// Perturbation is the upper bound of the random tie-breaking noise.
	Perturbation float64 `koanf:"perturbation" validate:"gte=0,lte=0.05"`
}

// MetricsConfig holds system metrics settings.
type MetricsConfig struct {
	ActiveUsersCeiling int `koanf:"active_users_ceiling" validate:"min=1"`
}

// WebSocketConfig holds broadcast hub client settings.
type WebSocketConfig struct {
	SendBuffer     int           `koanf:"send_buffer" validate:"min=1"`
	WriteWait      time.Duration `koanf:"write_wait" validate:"gt=0"`
	PongWait       time.Duration `koanf:"pong_wait" validate:"gt=0"`
	MaxMessageSize int64         `koanf:"max_message_size" validate:"min=1"`

	// ConnectRate limits new connections per second across all clients.
	// 0 disables admission limiting.
	ConnectRate  float64 `koanf:"connect_rate" validate:"gte=0"`
	ConnectBurst int     `koanf:"connect_burst" validate:"min=0"`
}

// EventsConfig selects how domain events reach the broadcast hub.
type EventsConfig struct {
	Transport string        `koanf:"transport" validate:"oneof=direct gochannel nats"`
	Topic     string        `koanf:"topic" validate:"required"`
	NATS      NATSConfig    `koanf:"nats"`
	Breaker   BreakerConfig `koanf:"breaker"`

	// Mirror delivers events to local clients directly and only publishes
	// them to the bus for other consumers. No relay is started.
	Mirror bool `koanf:"mirror"`
}

// NATSConfig holds NATS connection and embedded server settings.
type NATSConfig struct {
	URL            string        `koanf:"url"`
	EmbeddedServer bool          `koanf:"embedded_server"`
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port" validate:"min=-1,max=65535"`
	MaxReconnects  int           `koanf:"max_reconnects"`
	ReconnectWait  time.Duration `koanf:"reconnect_wait"`

	// QueueGroup load-balances relayed events across instances. Empty
	// delivers every event to every instance.
	QueueGroup string `koanf:"queue_group"`
}

// BreakerConfig configures the circuit breaker around event publishing.
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests" validate:"min=1"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout" validate:"gt=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"min=1"`
}

// SupervisorConfig mirrors suture failure handling settings.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold" validate:"gt=0"`
	FailureDecay     float64       `koanf:"failure_decay" validate:"gt=0"`
	FailureBackoff   time.Duration `koanf:"failure_backoff" validate:"gt=0"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}
