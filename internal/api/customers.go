// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Customers calls the guest registry endpoints.
type Customers struct {
	t *transport.Client
}

func NewCustomers(t *transport.Client) *Customers {
	return &Customers{t: t}
}

// Search matches customers by name or phone prefix, for autocomplete.
func (c *Customers) Search(ctx context.Context, query string, limit int) ([]models.CustomerSearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	setInt(q, "limit", limit)

	var out []models.CustomerSearchResult
	if err := c.t.Get(ctx, "/customers/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns a page of customers.
func (c *Customers) List(ctx context.Context, limit, offset int) (*models.CustomerList, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)

	var out models.CustomerList
	if err := c.t.Get(ctx, "/customers", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one customer by id.
func (c *Customers) Get(ctx context.Context, id int) (*models.Customer, error) {
	var out models.Customer
	if err := c.t.Get(ctx, fmt.Sprintf("/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a customer.
func (c *Customers) Create(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	var out models.Customer
	if err := c.t.Post(ctx, "/customers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a customer's details.
func (c *Customers) Update(ctx context.Context, id int, in models.CustomerInput) (*models.Customer, error) {
	var out models.Customer
	if err := c.t.Put(ctx, fmt.Sprintf("/customers/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a customer.
func (c *Customers) Delete(ctx context.Context, id int) error {
	return c.t.Delete(ctx, fmt.Sprintf("/customers/%d", id), nil)
}

// History returns a customer's past stays, most recent first.
func (c *Customers) History(ctx context.Context, id, limit int) ([]models.CustomerStayHistory, error) {
	q := url.Values{}
	setInt(q, "limit", limit)

	var out []models.CustomerStayHistory
	if err := c.t.Get(ctx, fmt.Sprintf("/customers/%d/history", id), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
