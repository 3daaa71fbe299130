// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import "fmt"

const (
	// MaxPerturbation is the upper bound on the diversification noise.
	MaxPerturbation = 0.05

	// MaxBatchSize is the most recommendations Generate returns.
	MaxBatchSize = 4
)

// Config tunes the engine.
type Config struct {
	// MaxResults is the batch size returned by Generate.
	MaxResults int

	// Perturbation scales the uniform noise added to each final score.
	// Zero disables noise.
	Perturbation float64
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		MaxResults:   MaxBatchSize,
		Perturbation: MaxPerturbation,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MaxResults < 1 || c.MaxResults > MaxBatchSize {
		return fmt.Errorf("max_results must be in [1, %d], got %d", MaxBatchSize, c.MaxResults)
	}
	if c.Perturbation < 0 || c.Perturbation > MaxPerturbation {
		return fmt.Errorf("perturbation must be in [0, %v], got %v", MaxPerturbation, c.Perturbation)
	}
	return nil
}
