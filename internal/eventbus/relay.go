// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package eventbus

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/smartchoice/internal/logging"
	"github.com/tomtom215/smartchoice/internal/metrics"
)

// FrameSink receives serialized event frames.
type FrameSink interface {
	NotifyFrame(frame []byte)
}

// MessageSource yields bus messages.
type MessageSource interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

// Relay forwards every bus message to a FrameSink. It implements
// suture.Service.
type Relay struct {
	source MessageSource
	sink   FrameSink
	logger zerolog.Logger
}

// NewRelay creates a relay from source to sink.
func NewRelay(source MessageSource, sink FrameSink) *Relay {
	return &Relay{
		source: source,
		sink:   sink,
		logger: logging.WithComponent("eventbus-relay"),
	}
}

// Serve subscribes and forwards messages until ctx is canceled. A closed
// subscription before cancellation is returned as an error so the
// supervisor restarts the relay.
func (r *Relay) Serve(ctx context.Context) error {
	messages, err := r.source.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	r.logger.Info().Msg("event relay started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("event relay stopped")
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("subscription closed")
			}
			r.forward(msg)
		}
	}
}

func (r *Relay) forward(msg *message.Message) {
	r.sink.NotifyFrame(msg.Payload)
	msg.Ack()
	metrics.EventBusRelayed.Inc()
	r.logger.Debug().
		Str("message_uuid", msg.UUID).
		Str("event_type", msg.Metadata.Get(MetadataEventType)).
		Msg("relayed event")
}

// String implements fmt.Stringer for suture logging.
func (r *Relay) String() string {
	return "eventbus-relay"
}
