// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

/*
Package supervisor runs the long-lived services of the Smart Choice Engine
under a suture v4 supervisor tree.

	RootSupervisor ("smartchoice")
	├── EventsSupervisor ("events-layer")
	│   ├── nats-server      (events.transport=nats with embedded_server)
	│   ├── eventbus-relay   (events.transport=gochannel|nats)
	│   └── eventbus         (closes the bus on shutdown)
	├── MessagingSupervisor ("messaging-layer")
	│   └── websocket-hub
	└── APISupervisor ("api-layer")
	    └── http-server

Crashed services restart with backoff; each layer counts failures on its
own. Supervisor events are logged through sutureslog into the zerolog-backed
slog handler from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddMessagingService(services.NewHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh
*/
package supervisor
