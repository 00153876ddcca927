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

// RoomTypes calls the room type catalog endpoints.
type RoomTypes struct {
	t *transport.Client
}

func NewRoomTypes(t *transport.Client) *RoomTypes {
	return &RoomTypes{t: t}
}

// List returns room types.
func (r *RoomTypes) List(ctx context.Context, skip, limit int, isActive *bool) ([]models.RoomType, error) {
	q := url.Values{}
	setInt(q, "skip", skip)
	setInt(q, "limit", limit)
	setBoolPtr(q, "is_active", isActive)

	var out []models.RoomType
	if err := r.t.Get(ctx, "/room-types/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one room type by id.
func (r *RoomTypes) Get(ctx context.Context, id int) (*models.RoomType, error) {
	var out models.RoomType
	if err := r.t.Get(ctx, fmt.Sprintf("/room-types/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns a room type with its occupancy statistics.
func (r *RoomTypes) Stats(ctx context.Context, id int) (*models.RoomTypeWithStats, error) {
	var out models.RoomTypeWithStats
	if err := r.t.Get(ctx, fmt.Sprintf("/room-types/%d/stats", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a room type.
func (r *RoomTypes) Create(ctx context.Context, in models.RoomTypeInput) (*models.RoomType, error) {
	var out models.RoomType
	if err := r.t.Post(ctx, "/room-types/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a room type.
func (r *RoomTypes) Update(ctx context.Context, id int, in models.RoomTypeInput) (*models.RoomType, error) {
	var out models.RoomType
	if err := r.t.Patch(ctx, fmt.Sprintf("/room-types/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a room type.
func (r *RoomTypes) Delete(ctx context.Context, id int) error {
	return r.t.Delete(ctx, fmt.Sprintf("/room-types/%d", id), nil)
}
