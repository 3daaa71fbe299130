// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package websocket

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/smartchoice/internal/logging"
	"github.com/tomtom215/smartchoice/internal/metrics"
	"github.com/tomtom215/smartchoice/internal/models"
)

var (
	// ErrSubscriberClosed is returned by Send after Close.
	ErrSubscriberClosed = errors.New("subscriber closed")

	// ErrSendBufferFull is returned by Send when the outbound buffer is full.
	ErrSendBufferFull = errors.New("send buffer full")
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Prune reasons recorded in metrics.
const (
	pruneBufferFull = "buffer_full"
	pruneClosed     = "closed"
	pruneError      = "error"
)

// Subscriber receives serialized frames. Send must not block.
type Subscriber interface {
	ID() uint64
	Send(frame []byte) error
	Close()
}

// Hub fans events out to subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint64]Subscriber
	snapshot    func() models.SystemMetrics
	logger      zerolog.Logger
}

// NewHub creates a hub. snapshot supplies the system_metrics frame sent to
// each new subscriber; nil disables the greeting.
func NewHub(snapshot func() models.SystemMetrics) *Hub {
	return &Hub{
		subscribers: make(map[uint64]Subscriber),
		snapshot:    snapshot,
		logger:      logging.WithComponent("websocket-hub"),
	}
}

// Subscribe adds sub and sends it the current system metrics asynchronously.
func (h *Hub) Subscribe(sub Subscriber) {
	h.mu.Lock()
	h.subscribers[sub.ID()] = sub
	count := len(h.subscribers)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(count))
	h.logger.Info().Uint64("client_id", sub.ID()).Int("total_clients", count).Msg("websocket client connected")

	if h.snapshot == nil {
		return
	}
	go func() {
		frame, err := Marshal(models.NewSystemMetricsEvent(h.snapshot()))
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to marshal system metrics")
			return
		}
		if err := sub.Send(frame); err != nil {
			h.prune(sub, err)
			return
		}
		metrics.WSMessagesSent.WithLabelValues(string(models.EventSystemMetrics)).Inc()
	}()
}

// Unsubscribe removes sub and closes it. Safe to call more than once.
func (h *Hub) Unsubscribe(sub Subscriber) {
	if h.remove(sub) {
		h.logger.Info().Uint64("client_id", sub.ID()).Int("total_clients", h.ClientCount()).Msg("websocket client disconnected")
	}
}

// remove deletes sub if it is still registered and closes it. It reports
// whether this call removed it.
func (h *Hub) remove(sub Subscriber) bool {
	h.mu.Lock()
	current, ok := h.subscribers[sub.ID()]
	if ok && current == sub {
		delete(h.subscribers, sub.ID())
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	if !ok || current != sub {
		return false
	}
	metrics.WSConnections.Set(float64(count))
	sub.Close()
	return true
}

func (h *Hub) prune(sub Subscriber, cause error) {
	if !h.remove(sub) {
		return
	}
	reason := pruneError
	switch {
	case errors.Is(cause, ErrSendBufferFull):
		reason = pruneBufferFull
	case errors.Is(cause, ErrSubscriberClosed):
		reason = pruneClosed
	}
	metrics.WSSubscribersPruned.WithLabelValues(reason).Inc()
	h.logger.Debug().Uint64("client_id", sub.ID()).Str("reason", reason).Msg("pruned websocket subscriber")
}

// Notify implements notify.Notifier. The event is marshaled once and
// delivered to every subscriber; failed subscribers are pruned.
func (h *Hub) Notify(_ context.Context, event models.Event) error {
	frame, err := Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	h.deliver(frame, string(event.Type))
	return nil
}

// NotifyFrame delivers an already serialized event frame.
func (h *Hub) NotifyFrame(frame []byte) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(frame, &head); err != nil || head.Type == "" {
		head.Type = "unknown"
	}
	h.deliver(frame, head.Type)
}

func (h *Hub) deliver(frame []byte, eventType string) {
	subs := h.subscriberSnapshot()

	var failed []Subscriber
	var failures []error
	for _, sub := range subs {
		if err := sub.Send(frame); err != nil {
			failed = append(failed, sub)
			failures = append(failures, err)
			continue
		}
		metrics.WSMessagesSent.WithLabelValues(eventType).Inc()
	}

	for i, sub := range failed {
		h.prune(sub, failures[i])
	}
}

// subscriberSnapshot copies the subscriber set so delivery runs unlocked.
// Order is unspecified.
func (h *Hub) subscriberSnapshot() []Subscriber {
	h.mu.RLock()
	subs := make([]Subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()
	return subs
}

// ClientCount returns the number of subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// RunWithContext blocks until ctx is canceled, then closes every subscriber.
func (h *Hub) RunWithContext(ctx context.Context) error {
	<-ctx.Done()

	closed := h.closeAll()
	h.logger.Info().
		Str("reason", string(shutdownReason(ctx))).
		Int("clients_closed", closed).
		Msg("websocket hub stopped")
	return ctx.Err()
}

func (h *Hub) closeAll() int {
	h.mu.Lock()
	subs := make([]Subscriber, 0, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs = append(subs, sub)
		delete(h.subscribers, id)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
	metrics.WSConnections.Set(0)
	return len(subs)
}

func shutdownReason(ctx context.Context) ShutdownReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// Marshal encodes an event frame.
func Marshal(event models.Event) ([]byte, error) {
	return json.Marshal(event)
}
