// Smart Choice Engine - Real-time Product Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/smartchoice

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/smartchoice/internal/models"
	"github.com/tomtom215/smartchoice/internal/validation"
)

// CustomerCatalog is a read-only customer source.
type CustomerCatalog interface {
	// Customers returns every customer in catalog order.
	Customers() []models.Customer
	// Customer looks up a single customer by ID.
	Customer(id int) (models.Customer, bool)
}

// ProductCatalog is a read-only product source.
type ProductCatalog interface {
	// Products returns every product in catalog order.
	Products() []models.Product
}

// Provider combines both catalogs.
type Provider interface {
	CustomerCatalog
	ProductCatalog
}

var (
	// ErrDuplicateID is returned when two records of the same kind share an ID.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrEmptyCatalog is returned when a seed has no customers or no products.
	ErrEmptyCatalog = errors.New("catalog must contain at least one customer and one product")
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile is the YAML layout of a catalog seed.
type seedFile struct {
	Customers []models.Customer `yaml:"customers"`
	Products  []models.Product  `yaml:"products"`
}

// Memory is an immutable in-memory catalog.
type Memory struct {
	customers []models.Customer
	products  []models.Product
	byID      map[int]int
}

var _ Provider = (*Memory)(nil)

// NewMemory validates the records and builds a catalog. Order is preserved.
func NewMemory(customers []models.Customer, products []models.Product) (*Memory, error) {
	if len(customers) == 0 || len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	m := &Memory{
		customers: append([]models.Customer(nil), customers...),
		products:  append([]models.Product(nil), products...),
		byID:      make(map[int]int, len(customers)),
	}

	for i := range m.customers {
		c := &m.customers[i]
		if err := validation.ValidateStruct(c); err != nil {
			return nil, fmt.Errorf("customer %d: %w", c.ID, err)
		}
		if _, dup := m.byID[c.ID]; dup {
			return nil, fmt.Errorf("customer %d: %w", c.ID, ErrDuplicateID)
		}
		m.byID[c.ID] = i
	}

	seen := make(map[int]struct{}, len(m.products))
	for i := range m.products {
		p := &m.products[i]
		if err := validation.ValidateStruct(p); err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}

	return m, nil
}

// Default returns the built-in catalog.
func Default() (*Memory, error) {
	m, err := Parse(defaultSeed)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return m, nil
}

// LoadFile reads a YAML seed from path.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return m, nil
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Memory, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a YAML seed. Unknown fields are rejected.
func Parse(data []byte) (*Memory, error) {
	var seed seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return NewMemory(seed.Customers, seed.Products)
}

// Customers returns a copy of all customers.
func (m *Memory) Customers() []models.Customer {
	return append([]models.Customer(nil), m.customers...)
}

// Customer looks up a customer by ID.
func (m *Memory) Customer(id int) (models.Customer, bool) {
	i, ok := m.byID[id]
	if !ok {
		return models.Customer{}, false
	}
	return m.customers[i], true
}

// Products returns a copy of all products.
func (m *Memory) Products() []models.Product {
	return append([]models.Product(nil), m.products...)
}
