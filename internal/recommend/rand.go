// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it but is not safe for concurrent use; see NewRandSource.
type RandSource interface {
	Float64() float64
}

// lockedRand serializes access to a *rand.Rand.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// NewRandSource returns a goroutine-safe source. A zero seed uses the clock.
func NewRandSource(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // scoring noise, not security
}
