// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package services

import (
	"context"
	"io"
)

// ContextHub is a hub whose lifetime is bound to a context.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// HubService supervises the WebSocket broadcast hub. On shutdown the hub
// closes every connected client.
type HubService struct {
	hub ContextHub
}

// NewHubService wraps hub.
func NewHubService(hub ContextHub) *HubService {
	return &HubService{hub: hub}
}

// Serve implements suture.Service.
func (s *HubService) Serve(ctx context.Context) error {
	return s.hub.RunWithContext(ctx)
}

// String implements fmt.Stringer for suture logging.
func (s *HubService) String() string {
	return "websocket-hub"
}

// CloserService holds a resource open for the lifetime of the tree and
// closes it on shutdown.
type CloserService struct {
	name   string
	closer io.Closer
}

// NewCloserService wraps closer under the given service name.
func NewCloserService(name string, closer io.Closer) *CloserService {
	return &CloserService{name: name, closer: closer}
}

// Serve blocks until ctx is canceled and then closes the resource. A close
// error is returned alongside the cancellation.
func (s *CloserService) Serve(ctx context.Context) error {
	<-ctx.Done()
	if err := s.closer.Close(); err != nil {
		return err
	}
	return ctx.Err()
}

// String implements fmt.Stringer for suture logging.
func (s *CloserService) String() string {
	return s.name
}
