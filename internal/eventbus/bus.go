// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	natsgo "github.com/nats-io/nats.go"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/smartchoice/internal/metrics"
	"github.com/tomtom215/smartchoice/internal/models"
)

// Transport names.
const (
	TransportGoChannel = "gochannel"
	TransportNATS      = "nats"
)

// Metadata keys set on every published message.
const (
	MetadataEventType = "event_type"
)

// ErrPublisherClosed is returned by Notify after Close.
var ErrPublisherClosed = errors.New("event bus closed")

// BreakerConfig configures the publish circuit breaker.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultBreakerConfig returns the production breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// NATSConfig configures the NATS transport.
type NATSConfig struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
	QueueGroup    string
}

// Bus publishes events to a topic and hands out subscriptions to it.
type Bus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	topic      string
	transport  string
	breaker    *gobreaker.CircuitBreaker[any]
	logger     watermill.LoggerAdapter

	// shared is set when publisher and subscriber are the same GoChannel.
	shared bool

	mu     sync.RWMutex
	closed bool
}

// NewGoChannel creates an in-process bus.
func NewGoChannel(topic string, breaker BreakerConfig, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)
	b := newBus(ch, ch, topic, TransportGoChannel, breaker, logger)
	b.shared = true
	return b
}

// NewNATS creates a bus on core NATS.
func NewNATS(topic string, cfg NATSConfig, breaker BreakerConfig, logger watermill.LoggerAdapter) (*Bus, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("smartchoice"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}
	jsConfig := wmNats.JetStreamConfig{Disabled: true}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   jsConfig,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              cfg.URL,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     5 * time.Second,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        jsConfig,
	}, logger)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("create NATS subscriber: %w", err)
	}

	return newBus(pub, sub, topic, TransportNATS, breaker, logger), nil
}

func newBus(pub message.Publisher, sub message.Subscriber, topic, transport string, bc BreakerConfig, logger watermill.LoggerAdapter) *Bus {
	b := &Bus{
		publisher:  pub,
		subscriber: sub,
		topic:      topic,
		transport:  transport,
		logger:     logger,
	}
	b.breaker = newCircuitBreaker("eventbus-"+transport, bc, logger)
	return b
}

// newCircuitBreaker trips after FailureThreshold consecutive publish failures.
func newCircuitBreaker(name string, cfg BreakerConfig, logger watermill.LoggerAdapter) *gobreaker.CircuitBreaker[any] {
	metrics.EventBusCircuitState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.EventBusCircuitState.WithLabelValues(name).Set(float64(to))
			logger.Info("Circuit breaker state changed", watermill.LogFields{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})
}

// Transport returns the transport name.
func (b *Bus) Transport() string {
	return b.transport
}

// Topic returns the topic events are published to.
func (b *Bus) Topic() string {
	return b.topic
}

// BreakerState returns the circuit breaker state ("closed", "open", "half-open").
func (b *Bus) BreakerState() string {
	return b.breaker.State().String()
}

// Notify implements notify.Notifier by publishing the serialized event.
func (b *Bus) Notify(_ context.Context, event models.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrPublisherClosed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	msg.Metadata.Set(MetadataEventType, string(event.Type))

	_, err = b.breaker.Execute(func() (any, error) {
		return nil, b.publisher.Publish(b.topic, msg)
	})
	metrics.RecordEventPublish(b.transport, err)
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	return nil
}

// Subscribe returns the message stream for the bus topic. The channel closes
// when ctx is canceled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrPublisherClosed
	}
	return b.subscriber.Subscribe(ctx, b.topic)
}

// Close shuts down the publisher and subscriber. Safe to call more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	if err := b.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close publisher: %w", err))
	}
	if !b.shared {
		if err := b.subscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close subscriber: %w", err))
		}
	}
	return errors.Join(errs...)
}
