// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

/*
Package services adapts Smart Choice Engine components to suture.Service.

	HTTPServerService   ListenAndServe/Shutdown -> Serve(ctx)
	HubService          websocket.Hub.RunWithContext -> Serve(ctx)
	CloserService       closes an io.Closer (the event bus) when the tree stops

Components that already implement Serve(ctx) error, such as the event bus
relay and the embedded NATS server, are added to the tree directly.
*/
package services
