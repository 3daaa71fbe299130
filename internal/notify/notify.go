// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

// Package notify defines the seam between event producers (the recommendation
// engine, API handlers) and the transports that deliver events to observers.
//
// Delivery is best-effort. A Notifier returns an error only so the caller can
// log it; producers never fail a request because an observer was unreachable.
package notify

import (
	"context"
	"errors"

	"github.com/tomtom215/smartchoice/internal/models"
)

// Notifier delivers an event to live observers.
type Notifier interface {
	Notify(ctx context.Context, event models.Event) error
}

// Func adapts a plain function to Notifier.
type Func func(ctx context.Context, event models.Event) error

// Notify calls f.
func (f Func) Notify(ctx context.Context, event models.Event) error {
	return f(ctx, event)
}

// Discard drops every event.
var Discard Notifier = Func(func(context.Context, models.Event) error { return nil })

// Multi fans an event out to several notifiers. Every notifier is called even
// when an earlier one fails; the errors are joined.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, event models.Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
