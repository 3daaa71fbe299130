// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/smartchoice/internal/models"
)

func testCustomers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "A", AvgOrderValue: 100, BehaviorScore: 0.5, Segment: "S1", FavoriteCategories: []string{"Fashion"}},
		{ID: 2, Name: "B", AvgOrderValue: 200, BehaviorScore: 0.7, Segment: "S2"},
		{ID: 3, Name: "C", AvgOrderValue: 300, BehaviorScore: 0.9, Segment: "S1"},
	}
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: 10, Name: "Jacket", Category: "Fashion", Price: 99, Popularity: 0.5, Rating: 4.5},
		{ID: 11, Name: "Mouse", Category: "Gaming", Price: 49, Popularity: 0.2, Rating: 3.9},
	}
}

func TestDefault(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	customers := m.Customers()
	if len(customers) < 3 {
		t.Fatalf("expected at least 3 customers, got %d", len(customers))
	}
	if len(m.Products()) != 8 {
		t.Fatalf("expected 8 products, got %d", len(m.Products()))
	}

	emma, ok := m.Customer(1)
	if !ok {
		t.Fatal("customer 1 missing")
	}
	if emma.Name != "Emma Andersson" || emma.BehaviorScore != 0.85 {
		t.Errorf("customer 1 = %+v", emma)
	}
	if !reflect.DeepEqual(emma.FavoriteCategories, []string{"Fashion", "Accessories"}) {
		t.Errorf("favorites = %v", emma.FavoriteCategories)
	}
	if emma.PurchaseHistory[1] != "Väska" {
		t.Errorf("purchase history not decoded as UTF-8: %v", emma.PurchaseHistory)
	}

	if p := m.Products()[4]; p.InStock || p.Rating != 4.8 {
		t.Errorf("product 5 = %+v", p)
	}
}

func TestNewMemory_PreservesOrderAndLookup(t *testing.T) {
	m, err := NewMemory(testCustomers(), testProducts())
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}

	ids := make([]int, 0, 3)
	for _, c := range m.Customers() {
		ids = append(ids, c.ID)
	}
	if !reflect.DeepEqual(ids, []int{1, 2, 3}) {
		t.Errorf("customer order = %v", ids)
	}

	if _, ok := m.Customer(9999); ok {
		t.Error("unknown customer should not be found")
	}
	if c, ok := m.Customer(3); !ok || c.Name != "C" {
		t.Errorf("Customer(3) = %+v, %v", c, ok)
	}
}

func TestNewMemory_ReturnsCopies(t *testing.T) {
	m, err := NewMemory(testCustomers(), testProducts())
	if err != nil {
		t.Fatal(err)
	}

	customers := m.Customers()
	customers[0].Name = "mutated"
	products := m.Products()
	products[0].Price = 1

	if c, _ := m.Customer(1); c.Name != "A" {
		t.Error("catalog customer mutated through returned slice")
	}
	if m.Products()[0].Price != 99 {
		t.Error("catalog product mutated through returned slice")
	}
}

func TestNewMemory_Errors(t *testing.T) {
	tests := []struct {
		name      string
		customers func() []models.Customer
		products  func() []models.Product
		wantErr   error
		wantMsg   string
	}{
		{
			name:      "no customers",
			customers: func() []models.Customer { return nil },
			products:  testProducts,
			wantErr:   ErrEmptyCatalog,
		},
		{
			name:      "no products",
			customers: testCustomers,
			products:  func() []models.Product { return nil },
			wantErr:   ErrEmptyCatalog,
		},
		{
			name: "duplicate customer",
			customers: func() []models.Customer {
				c := testCustomers()
				c[2].ID = 1
				return c
			},
			products: testProducts,
			wantErr:  ErrDuplicateID,
		},
		{
			name:      "duplicate product",
			customers: testCustomers,
			products: func() []models.Product {
				p := testProducts()
				p[1].ID = 10
				return p
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "behavior score out of range",
			customers: func() []models.Customer {
				c := testCustomers()
				c[0].BehaviorScore = 1.2
				return c
			},
			products: testProducts,
			wantMsg:  "between 0 and 1",
		},
		{
			name: "zero average order value",
			customers: func() []models.Customer {
				c := testCustomers()
				c[1].AvgOrderValue = 0
				return c
			},
			products: testProducts,
			wantMsg:  "AvgOrderValue",
		},
		{
			name:      "rating above five",
			customers: testCustomers,
			products: func() []models.Product {
				p := testProducts()
				p[0].Rating = 5.5
				return p
			},
			wantMsg: "Rating",
		},
		{
			name:      "negative price",
			customers: testCustomers,
			products: func() []models.Product {
				p := testProducts()
				p[1].Price = -3
				return p
			},
			wantMsg: "Price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemory(tt.customers(), tt.products())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	seed := `
customers:
  - id: 7
    name: Test Kund
    avg_order_value: 500
    behavior_score: 0.4
    favorite_categories: [Gaming]
products:
  - id: 1
    name: Gaming Mus
    category: Gaming
    price: 399
    popularity: 0.3
    rating: 4.0
`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c, ok := m.Customer(7); !ok || c.Name != "Test Kund" {
		t.Errorf("Customer(7) = %+v, %v", c, ok)
	}

	if _, err := Load(""); err != nil {
		t.Errorf("Load(\"\") should fall back to the built-in catalog: %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("customers: []\nproducts: []\nshops: []\n"))
	if err == nil {
		t.Fatal("expected error for unknown top-level field")
	}
}

func TestSegments(t *testing.T) {
	got := Segments(testCustomers())
	if !reflect.DeepEqual(got, []string{"S1", "S2"}) {
		t.Errorf("Segments() = %v", got)
	}
	if got := Segments(nil); len(got) != 0 {
		t.Errorf("Segments(nil) = %v", got)
	}
}

func TestAverageBehaviorScore(t *testing.T) {
	if got := AverageBehaviorScore(testCustomers()); math.Abs(got-0.7) > 1e-12 {
		t.Errorf("AverageBehaviorScore() = %v, want 0.7", got)
	}
	if got := AverageBehaviorScore(nil); got != 0 {
		t.Errorf("AverageBehaviorScore(nil) = %v, want 0", got)
	}
}
