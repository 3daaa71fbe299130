// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/smartchoice/internal/analytics"
	"github.com/tomtom215/smartchoice/internal/api"
	"github.com/tomtom215/smartchoice/internal/catalog"
	"github.com/tomtom215/smartchoice/internal/config"
	"github.com/tomtom215/smartchoice/internal/eventbus"
	"github.com/tomtom215/smartchoice/internal/logging"
	"github.com/tomtom215/smartchoice/internal/notify"
	"github.com/tomtom215/smartchoice/internal/recommend"
	"github.com/tomtom215/smartchoice/internal/supervisor"
	"github.com/tomtom215/smartchoice/internal/supervisor/services"
	ws "github.com/tomtom215/smartchoice/internal/websocket"
)

// app holds the wired components.
type app struct {
	cfg        *config.Config
	catalog    *catalog.Memory
	engine     *recommend.Engine
	store      *analytics.ResultStore
	aggregator *analytics.Aggregator
	hub        *ws.Hub
	handler    http.Handler

	// Set only for bus transports. relay stays nil in mirror mode.
	bus        *eventbus.Bus
	relay      *eventbus.Relay
	natsServer *eventbus.EmbeddedServer
}

// buildApp wires every component from cfg. On error anything already
// started is torn down.
func buildApp(cfg *config.Config) (a *app, err error) {
	a = &app{cfg: cfg}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	a.catalog, err = catalog.Load(cfg.Catalog.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	registry, err := recommend.NewVariantRegistry(recommend.DefaultVariants()...)
	if err != nil {
		return nil, fmt.Errorf("variant registry: %w", err)
	}

	a.store = analytics.NewResultStore()
	a.aggregator = analytics.NewAggregator(cfg.Metrics.ActiveUsersCeiling)
	a.aggregator.SetTopVariant(string(registry.Variants()[0].ID))
	a.hub = ws.NewHub(a.aggregator.Snapshot)

	notifier, err := a.buildNotifier()
	if err != nil {
		return nil, err
	}

	a.engine, err = recommend.NewEngine(recommend.Config{
		MaxResults:   cfg.Recommend.MaxResults,
		Perturbation: cfg.Recommend.Perturbation,
	}, recommend.Deps{
		Catalog:  a.catalog,
		Registry: registry,
		Results:  a.store,
		Metrics:  a.aggregator,
		Notifier: notifier,
		Rand:     recommend.NewRandSource(cfg.Recommend.Seed),
		Logger:   logging.WithComponent("recommend"),
	})
	if err != nil {
		return nil, fmt.Errorf("recommendation engine: %w", err)
	}

	handler, err := api.NewHandler(api.Dependencies{
		Engine:         a.engine,
		Catalog:        a.catalog,
		Results:        a.store,
		Aggregator:     a.aggregator,
		Hub:            a.hub,
		Notifier:       notifier,
		AllowedOrigins: cfg.Security.CORSOrigins,
		WebSocket: ws.ClientConfig{
			SendBuffer:     cfg.WebSocket.SendBuffer,
			WriteWait:      cfg.WebSocket.WriteWait,
			PongWait:       cfg.WebSocket.PongWait,
			MaxMessageSize: cfg.WebSocket.MaxMessageSize,
		},
		ConnectRate:  cfg.WebSocket.ConnectRate,
		ConnectBurst: cfg.WebSocket.ConnectBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("api handler: %w", err)
	}

	mwCfg := api.DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	mwCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	mwCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled
	a.handler = api.NewRouter(handler, api.NewChiMiddleware(mwCfg))

	logging.Info().
		Int("customers", len(a.catalog.Customers())).
		Int("products", len(a.catalog.Products())).
		Int("variants", registry.Len()).
		Str("transport", cfg.Events.Transport).
		Msg("Application wired")
	return a, nil
}

// buildNotifier selects the event transport. Direct delivery goes straight
// to the hub; bus transports publish and let the relay feed the hub, or in
// mirror mode deliver to the hub and publish side by side.
func (a *app) buildNotifier() (notify.Notifier, error) {
	ev := a.cfg.Events
	breaker := eventbus.BreakerConfig{
		MaxRequests:      ev.Breaker.MaxRequests,
		Interval:         ev.Breaker.Interval,
		Timeout:          ev.Breaker.Timeout,
		FailureThreshold: ev.Breaker.FailureThreshold,
	}

	switch ev.Transport {
	case config.TransportDirect, "":
		return a.hub, nil

	case config.TransportGoChannel:
		a.bus = eventbus.NewGoChannel(ev.Topic, breaker, logging.NewWatermillLogger())

	case config.TransportNATS:
		url := ev.NATS.URL
		if ev.NATS.EmbeddedServer {
			srv, err := eventbus.StartEmbeddedServer(eventbus.ServerConfig{
				Host: ev.NATS.Host,
				Port: ev.NATS.Port,
			})
			if err != nil {
				return nil, fmt.Errorf("embedded NATS server: %w", err)
			}
			a.natsServer = srv
			url = srv.ClientURL()
		}
		bus, err := eventbus.NewNATS(ev.Topic, eventbus.NATSConfig{
			URL:           url,
			MaxReconnects: ev.NATS.MaxReconnects,
			ReconnectWait: ev.NATS.ReconnectWait,
			QueueGroup:    ev.NATS.QueueGroup,
		}, breaker, logging.NewWatermillLogger())
		if err != nil {
			return nil, fmt.Errorf("NATS event bus: %w", err)
		}
		a.bus = bus

	default:
		return nil, fmt.Errorf("unknown event transport %q", ev.Transport)
	}

	if ev.Mirror {
		return notify.Multi{a.hub, a.bus}, nil
	}
	a.relay = eventbus.NewRelay(a.bus, a.hub)
	return a.bus, nil
}

// register adds the long-running services to the tree.
func (a *app) register(tree *supervisor.SupervisorTree, server services.HTTPServer) {
	if a.natsServer != nil {
		tree.AddEventService(a.natsServer)
	}
	if a.relay != nil {
		tree.AddEventService(a.relay)
	}
	if a.bus != nil {
		tree.AddEventService(services.NewCloserService("eventbus", a.bus))
	}
	tree.AddMessagingService(services.NewHubService(a.hub))
	tree.AddAPIService(services.NewHTTPServerService(server, a.cfg.Server.ShutdownTimeout))
}

// close releases resources acquired by buildApp outside the tree.
func (a *app) close() {
	var errs []error
	if a.bus != nil {
		errs = append(errs, a.bus.Close())
	}
	if a.natsServer != nil && a.natsServer.IsRunning() {
		a.natsServer.Shutdown()
	}
	if err := errors.Join(errs...); err != nil {
		logging.Warn().Err(err).Msg("Failed to close event bus")
	}
}
