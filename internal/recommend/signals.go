// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package recommend

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/smartchoice/internal/models"
)

// Signal constants.
const (
	collaborativeFloor      = 0.3
	collaborativeMultiplier = 1.2

	contentBase            = 0.6
	contentRatingPivot     = 4.0
	contentRatingFactor    = 0.1
	contentPopularityBonus = 0.1
	contentHistoryBonus    = 0.1
	contentRelatedBase     = 0.25
	contentUnrelatedBase   = 0.05
	contentNoiseBand       = 0.2

	purchaseCeiling    = 20.0
	orderValueCeiling  = 2000.0
	weightFrequency    = 0.25
	weightOrderValue   = 0.2
	weightEngagement   = 0.35
	weightPriceFit     = 0.2
	priceFitFullCredit = 1.2
	priceFitDecay      = 0.5
	priceFitFloor      = 0.2

	minTokenRunes = 3
)

// relatedCategories is the category adjacency table. Lookups check both
// directions, so each pair is listed once.
var relatedCategories = map[string][]string{
	"Fashion":     {"Accessories"},
	"Electronics": {"Gaming"},
	"Beauty":      {"Skincare"},
}

// CatalogContext is the catalog state a signal may consult.
type CatalogContext struct {
	Customers []models.Customer
}

// CollaborativeSignal scores how closely customers with overlapping favorite
// categories resemble the customer. The product is currently unused; the
// signal is the same for every product in a batch.
func CollaborativeSignal(customer *models.Customer, _ *models.Product, cc CatalogContext) float64 {
	var (
		sum     float64
		similar int
	)
	for i := range cc.Customers {
		other := &cc.Customers[i]
		if other.ID == customer.ID || !sharesFavorite(customer, other) {
			continue
		}
		similar++
		sum += jaccard(customer.FavoriteCategories, other.FavoriteCategories) * other.BehaviorScore
	}
	if similar == 0 {
		return collaborativeFloor
	}
	return clamp01(sum / float64(similar) * collaborativeMultiplier)
}

// ContentSignal scores category, rating, popularity and purchase-history fit.
// Only non-favorite categories draw from rng.
func ContentSignal(customer *models.Customer, product *models.Product, rng RandSource) float64 {
	switch {
	case customer.HasFavorite(product.Category):
		score := contentBase +
			(product.Rating-contentRatingPivot)*contentRatingFactor +
			product.Popularity*contentPopularityBonus
		if historyMatches(customer.PurchaseHistory, product.Name) {
			score += contentHistoryBonus
		}
		return clamp01(score)
	case isRelatedToFavorites(customer, product.Category):
		return clamp01(contentRelatedBase + rng.Float64()*contentNoiseBand)
	default:
		return clamp01(contentUnrelatedBase + rng.Float64()*contentNoiseBand)
	}
}

// BehavioralSignal scores purchase frequency, order value, engagement and
// how well the price fits the customer's usual spend.
func BehavioralSignal(customer *models.Customer, product *models.Product) float64 {
	purchases := float64(customer.TotalPurchases)
	if purchases == 0 {
		purchases = float64(len(customer.PurchaseHistory))
	}

	score := weightFrequency*math.Min(purchases/purchaseCeiling, 1) +
		weightOrderValue*math.Min(customer.AvgOrderValue/orderValueCeiling, 1) +
		weightEngagement*customer.BehaviorScore +
		weightPriceFit*priceFit(product.Price, customer.AvgOrderValue)
	return clamp01(score)
}

// priceFit gives full credit up to 1.2x the average order value, then decays
// linearly down to a floor.
func priceFit(price, avgOrderValue float64) float64 {
	if avgOrderValue <= 0 {
		return priceFitFloor
	}
	ratio := price / avgOrderValue
	if ratio <= priceFitFullCredit {
		return 1
	}
	return math.Max(priceFitFloor, 1-(ratio-priceFitFullCredit)*priceFitDecay)
}

// AreRelated reports whether two categories are adjacent in either direction.
func AreRelated(a, b string) bool {
	for _, r := range relatedCategories[a] {
		if r == b {
			return true
		}
	}
	for _, r := range relatedCategories[b] {
		if r == a {
			return true
		}
	}
	return false
}

func isRelatedToFavorites(customer *models.Customer, category string) bool {
	for _, fav := range customer.FavoriteCategories {
		if AreRelated(fav, category) {
			return true
		}
	}
	return false
}

func sharesFavorite(a, b *models.Customer) bool {
	for _, fav := range a.FavoriteCategories {
		if b.HasFavorite(fav) {
			return true
		}
	}
	return false
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// historyMatches reports whether any purchase shares a name token with the product.
func historyMatches(history []string, productName string) bool {
	if len(history) == 0 {
		return false
	}
	productTokens := make(map[string]struct{})
	for _, tok := range tokenize(productName) {
		productTokens[tok] = struct{}{}
	}
	for _, purchase := range history {
		for _, tok := range tokenize(purchase) {
			if _, ok := productTokens[tok]; ok {
				return true
			}
		}
	}
	return false
}

// tokenize lower-cases s and splits it on anything that is not a letter or
// digit, dropping tokens shorter than minTokenRunes.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
