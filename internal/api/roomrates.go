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

// RoomRates calls the rate card endpoints.
type RoomRates struct {
	t *transport.Client
}

func NewRoomRates(t *transport.Client) *RoomRates {
	return &RoomRates{t: t}
}

// RoomRateListFilter narrows rate list queries.
type RoomRateListFilter struct {
	Skip       int
	Limit      int
	RoomTypeID int
	StayType   models.StayType
	IsActive   *bool
}

// List returns rates matching the filter.
func (r *RoomRates) List(ctx context.Context, f RoomRateListFilter) ([]models.RoomRate, error) {
	q := url.Values{}
	setInt(q, "skip", f.Skip)
	setInt(q, "limit", f.Limit)
	setInt(q, "room_type_id", f.RoomTypeID)
	setStr(q, "stay_type", string(f.StayType))
	setBoolPtr(q, "is_active", f.IsActive)

	var out []models.RoomRate
	if err := r.t.Get(ctx, "/room-rates/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matrix returns the per-type overnight/temporary rate grid.
func (r *RoomRates) Matrix(ctx context.Context) ([]models.RoomRateMatrixRow, error) {
	var out []models.RoomRateMatrixRow
	if err := r.t.Get(ctx, "/room-rates/matrix", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Current returns the rate in effect for a room type and stay type.
// checkDate is optional (backend defaults to today).
func (r *RoomRates) Current(ctx context.Context, roomTypeID int, stayType models.StayType, checkDate string) (*models.RoomRate, error) {
	q := url.Values{}
	setIntAlways(q, "room_type_id", roomTypeID)
	q.Set("stay_type", string(stayType))
	setStr(q, "check_date", checkDate)

	var out models.RoomRate
	if err := r.t.Get(ctx, "/room-rates/current", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one rate by id.
func (r *RoomRates) Get(ctx context.Context, id int) (*models.RoomRate, error) {
	var out models.RoomRate
	if err := r.t.Get(ctx, fmt.Sprintf("/room-rates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a rate.
func (r *RoomRates) Create(ctx context.Context, in models.RoomRateInput) (*models.RoomRate, error) {
	var out models.RoomRate
	if err := r.t.Post(ctx, "/room-rates/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a rate.
func (r *RoomRates) Update(ctx context.Context, id int, in models.RoomRateInput) (*models.RoomRate, error) {
	var out models.RoomRate
	if err := r.t.Patch(ctx, fmt.Sprintf("/room-rates/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a rate.
func (r *RoomRates) Delete(ctx context.Context, id int) error {
	return r.t.Delete(ctx, fmt.Sprintf("/room-rates/%d", id), nil)
}
