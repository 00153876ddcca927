// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Products calls the minibar/shop product endpoints.
type Products struct {
	t *transport.Client
}

func NewProducts(t *transport.Client) *Products {
	return &Products{t: t}
}

// List returns active products, optionally limited to one category.
func (p *Products) List(ctx context.Context, skip, limit int, category models.ProductCategory) (*models.ProductList, error) {
	q := url.Values{}
	setInt(q, "skip", skip)
	setInt(q, "limit", limit)
	setStr(q, "category", string(category))

	var out models.ProductList
	if err := p.t.Get(ctx, "/products", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAll returns every product including inactive ones (admin only).
func (p *Products) ListAll(ctx context.Context, skip, limit int, includeInactive bool) (*models.ProductList, error) {
	q := url.Values{}
	setInt(q, "skip", skip)
	setInt(q, "limit", limit)
	if includeInactive {
		q.Set("include_inactive", strconv.FormatBool(true))
	}

	var out models.ProductList
	if err := p.t.Get(ctx, "/products/admin/all", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one product by id.
func (p *Products) Get(ctx context.Context, id int) (*models.Product, error) {
	var out models.Product
	if err := p.t.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a product.
func (p *Products) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	var out models.Product
	if err := p.t.Post(ctx, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a product's details.
func (p *Products) Update(ctx context.Context, id int, in models.ProductUpdate) (*models.Product, error) {
	var out models.Product
	if err := p.t.Put(ctx, fmt.Sprintf("/products/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product.
func (p *Products) Delete(ctx context.Context, id int) error {
	return p.t.Delete(ctx, fmt.Sprintf("/products/%d", id), nil)
}
