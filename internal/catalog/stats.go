// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package catalog

import "github.com/tomtom215/smartchoice/internal/models"

// Segments returns the distinct customer segments in first-seen order.
func Segments(customers []models.Customer) []string {
	seen := make(map[string]struct{}, len(customers))
	segments := make([]string, 0, len(customers))
	for i := range customers {
		s := customers[i].Segment
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		segments = append(segments, s)
	}
	return segments
}

// AverageBehaviorScore returns the mean behavior score, 0 for no customers.
func AverageBehaviorScore(customers []models.Customer) float64 {
	if len(customers) == 0 {
		return 0
	}
	var sum float64
	for i := range customers {
		sum += customers[i].BehaviorScore
	}
	return sum / float64(len(customers))
}
