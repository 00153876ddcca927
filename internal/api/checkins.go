// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"fmt"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// CheckIns calls the stay lifecycle endpoints.
type CheckIns struct {
	t *transport.Client
}

func NewCheckIns(t *transport.Client) *CheckIns {
	return &CheckIns{t: t}
}

// Create opens a stay. The backend matches or creates the customer from the
// embedded customer data in the same call.
func (c *CheckIns) Create(ctx context.Context, in models.CheckInInput) (*models.CheckIn, error) {
	var out models.CheckIn
	if err := c.t.Post(ctx, "/check-ins", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one check-in by id.
func (c *CheckIns) Get(ctx context.Context, id int) (*models.CheckIn, error) {
	var out models.CheckIn
	if err := c.t.Get(ctx, fmt.Sprintf("/check-ins/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveByRoom returns the active check-in occupying a room. A 404 means the
// room has no active stay; callers classify with transport.IsNotFound.
func (c *CheckIns) ActiveByRoom(ctx context.Context, roomID int) (*models.CheckIn, error) {
	var out models.CheckIn
	if err := c.t.Get(ctx, fmt.Sprintf("/check-ins/room/%d/active", roomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckoutSummary returns the settlement preview with calculated amounts.
func (c *CheckIns) CheckoutSummary(ctx context.Context, id int) (*models.CheckOutSummary, error) {
	var out models.CheckOutSummary
	if err := c.t.Get(ctx, fmt.Sprintf("/check-ins/%d/checkout-summary", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Checkout settles and closes a stay.
func (c *CheckIns) Checkout(ctx context.Context, id int, in models.CheckOutInput) (*models.CheckIn, error) {
	var out models.CheckIn
	if err := c.t.Post(ctx, fmt.Sprintf("/check-ins/%d/checkout", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transfer moves an active stay to another room.
func (c *CheckIns) Transfer(ctx context.Context, id int, in models.RoomTransferInput) (*models.RoomTransferResult, error) {
	var out models.RoomTransferResult
	if err := c.t.Post(ctx, fmt.Sprintf("/check-ins/%d/transfer-room", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
