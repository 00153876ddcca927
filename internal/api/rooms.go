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

// Rooms calls the room inventory endpoints.
type Rooms struct {
	t *transport.Client
}

func NewRooms(t *transport.Client) *Rooms {
	return &Rooms{t: t}
}

// List returns rooms matching the filter.
func (r *Rooms) List(ctx context.Context, f models.RoomListFilter) ([]models.Room, error) {
	q := url.Values{}
	setInt(q, "skip", f.Skip)
	setInt(q, "limit", f.Limit)
	setIntPtr(q, "floor", f.Floor)
	setStr(q, "status", string(f.Status))
	setInt(q, "room_type_id", f.RoomTypeID)
	setBoolPtr(q, "is_active", f.IsActive)

	var out []models.Room
	if err := r.t.Get(ctx, "/rooms/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Available returns rooms currently free for check-in, optionally limited to
// one room type.
func (r *Rooms) Available(ctx context.Context, roomTypeID int) ([]models.Room, error) {
	q := url.Values{}
	setInt(q, "room_type_id", roomTypeID)

	var out []models.Room
	if err := r.t.Get(ctx, "/rooms/available", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByFloor returns the rooms on one floor.
func (r *Rooms) ByFloor(ctx context.Context, floor int) ([]models.Room, error) {
	var out []models.Room
	if err := r.t.Get(ctx, fmt.Sprintf("/rooms/floor/%d", floor), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one room by id.
func (r *Rooms) Get(ctx context.Context, id int) (*models.Room, error) {
	var out models.Room
	if err := r.t.Get(ctx, fmt.Sprintf("/rooms/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a room.
func (r *Rooms) Create(ctx context.Context, in models.RoomInput) (*models.Room, error) {
	var out models.Room
	if err := r.t.Post(ctx, "/rooms/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a room.
func (r *Rooms) Update(ctx context.Context, id int, in models.RoomInput) (*models.Room, error) {
	var out models.Room
	if err := r.t.Patch(ctx, fmt.Sprintf("/rooms/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus changes only a room's status.
func (r *Rooms) UpdateStatus(ctx context.Context, id int, status models.RoomStatus) (*models.Room, error) {
	body := map[string]models.RoomStatus{"status": status}
	var out models.Room
	if err := r.t.Patch(ctx, fmt.Sprintf("/rooms/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a room.
func (r *Rooms) Delete(ctx context.Context, id int) error {
	return r.t.Delete(ctx, fmt.Sprintf("/rooms/%d", id), nil)
}
