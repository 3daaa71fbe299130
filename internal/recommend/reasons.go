// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/smartchoice/internal/models"
)

const (
	weakSignalThreshold = 0.3

	contentTagThreshold       = 0.5
	collaborativeTagThreshold = 0.5
	behavioralTagThreshold    = 0.6
)

const (
	reasonCollaborative = "Popular among customers with similar taste"
	reasonBehavioral    = "Recommended for active premium customers"
	reasonTrending      = "Trending product in your demographic group"
)

// Reason describes the dominant signal. Ties favor content, then
// collaborative, then behavioral. Weak matches get a generic trending line.
func Reason(customer *models.Customer, s models.SignalScores) string {
	dominant, value := models.AlgorithmContent, s.Content
	if s.Collaborative > value {
		dominant, value = models.AlgorithmCollaborative, s.Collaborative
	}
	if s.Behavioral > value {
		dominant, value = models.AlgorithmBehavioral, s.Behavioral
	}
	if value < weakSignalThreshold {
		return reasonTrending
	}

	switch dominant {
	case models.AlgorithmContent:
		if len(customer.FavoriteCategories) == 0 {
			return reasonTrending
		}
		return fmt.Sprintf("Perfect match for %s lovers", strings.Join(customer.FavoriteCategories, " & "))
	case models.AlgorithmCollaborative:
		return reasonCollaborative
	default:
		return reasonBehavioral
	}
}

// Algorithms returns the signals above their tag thresholds, or HYBRID when
// none qualify. The result is never empty.
func Algorithms(s models.SignalScores) []string {
	tags := make([]string, 0, 3)
	if s.Content > contentTagThreshold {
		tags = append(tags, models.AlgorithmContent)
	}
	if s.Collaborative > collaborativeTagThreshold {
		tags = append(tags, models.AlgorithmCollaborative)
	}
	if s.Behavioral > behavioralTagThreshold {
		tags = append(tags, models.AlgorithmBehavioral)
	}
	if len(tags) == 0 {
		tags = append(tags, models.AlgorithmHybrid)
	}
	return tags
}
