// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package models

// Customer is a shopper profile. PurchaseHistory is ordered most recent first.
type Customer struct {
	ID                 int      `json:"id" yaml:"id" validate:"min=1"`
	Name               string   `json:"name" yaml:"name" validate:"required"`
	Email              string   `json:"email" yaml:"email" validate:"omitempty,email"`
	Age                int      `json:"age" yaml:"age" validate:"min=0,max=150"`
	Location           string   `json:"location" yaml:"location"`
	TotalPurchases     int      `json:"totalPurchases" yaml:"total_purchases" validate:"min=0"`
	AvgOrderValue      float64  `json:"avgOrderValue" yaml:"avg_order_value" validate:"gt=0"`
	FavoriteCategories []string `json:"favoriteCategories" yaml:"favorite_categories" validate:"unique"`
	LastActive         string   `json:"lastActive" yaml:"last_active"`
	PurchaseHistory    []string `json:"purchaseHistory" yaml:"purchase_history"`
	BehaviorScore      float64  `json:"behaviorScore" yaml:"behavior_score" validate:"unit"`
	Segment            string   `json:"segment" yaml:"segment"`
}

// PublicCustomer is the customer view returned by the catalog listing.
type PublicCustomer struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Segment        string  `json:"segment"`
	Location       string  `json:"location"`
	TotalPurchases int     `json:"totalPurchases"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
	BehaviorScore  float64 `json:"behaviorScore"`
}

// Public strips contact details and history.
//
//nolint:gocritic // Customer is a value record
func (c Customer) Public() PublicCustomer {
	return PublicCustomer{
		ID:             c.ID,
		Name:           c.Name,
		Segment:        c.Segment,
		Location:       c.Location,
		TotalPurchases: c.TotalPurchases,
		AvgOrderValue:  c.AvgOrderValue,
		BehaviorScore:  c.BehaviorScore,
	}
}

// HasFavorite reports whether category is one of the customer's favorites.
func (c *Customer) HasFavorite(category string) bool {
	for _, fav := range c.FavoriteCategories {
		if fav == category {
			return true
		}
	}
	return false
}

// Product is a catalog item.
type Product struct {
	ID          int      `json:"id" yaml:"id" validate:"min=1"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Category    string   `json:"category" yaml:"category" validate:"required"`
	Price       float64  `json:"price" yaml:"price" validate:"gt=0"`
	Popularity  float64  `json:"popularity" yaml:"popularity" validate:"unit"`
	Rating      float64  `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Tags        []string `json:"tags,omitempty" yaml:"tags"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	InStock     bool     `json:"inStock" yaml:"in_stock"`
}
