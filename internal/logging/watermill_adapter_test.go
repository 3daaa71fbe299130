// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

func TestWatermillLogger(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { Init(DefaultConfig()) })

	var buf bytes.Buffer
	adapter := NewWatermillLoggerWith(zerolog.New(&buf))

	tests := []struct {
		name string
		log  func(l watermill.LoggerAdapter)
		want []string
	}{
		{
			name: "error",
			log: func(l watermill.LoggerAdapter) {
				l.Error("publish failed", errors.New("nats down"), watermill.LogFields{"topic": "events"})
			},
			want: []string{`"level":"error"`, `"error":"nats down"`, `"topic":"events"`},
		},
		{
			name: "info",
			log:  func(l watermill.LoggerAdapter) { l.Info("subscribed", nil) },
			want: []string{`"level":"info"`, `"message":"subscribed"`},
		},
		{
			name: "debug",
			log:  func(l watermill.LoggerAdapter) { l.Debug("ack", watermill.LogFields{"uuid": "1"}) },
			want: []string{`"level":"debug"`, `"uuid":"1"`},
		},
		{
			name: "trace",
			log:  func(l watermill.LoggerAdapter) { l.Trace("raw", nil) },
			want: []string{`"level":"trace"`},
		},
		{
			name: "with",
			log: func(l watermill.LoggerAdapter) {
				l.With(watermill.LogFields{"subscriber": "relay"}).Info("started", nil)
			},
			want: []string{`"subscriber":"relay"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log(adapter)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("expected %s in output: %s", w, buf.String())
				}
			}
		})
	}
}
