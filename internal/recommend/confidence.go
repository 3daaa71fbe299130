// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import "math"

const (
	agreementFloor     = 0.1
	absoluteMultiplier = 1.2
	agreementWeight    = 0.6
	absoluteWeight     = 0.4
)

// Confidence combines signal agreement (low variance) with overall signal
// strength. It is symmetric in its inputs and stays within [0, 1] for
// inputs in [0, 1].
func Confidence(collaborative, content, behavioral float64) float64 {
	mean := (collaborative + content + behavioral) / 3
	variance := (sq(collaborative-mean) + sq(content-mean) + sq(behavioral-mean)) / 3

	agreement := math.Max(agreementFloor, 1-variance)
	absolute := math.Min(mean*absoluteMultiplier, 1)
	return agreementWeight*agreement + absoluteWeight*absolute
}

func sq(v float64) float64 { return v * v }
