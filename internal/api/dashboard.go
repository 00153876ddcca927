// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Dashboard calls the front-desk overview endpoints.
type Dashboard struct {
	t *transport.Client
}

func NewDashboard(t *transport.Client) *Dashboard {
	return &Dashboard{t: t}
}

// Get returns the combined room cards, stats and last-updated timestamp.
func (d *Dashboard) Get(ctx context.Context) (*models.DashboardSnapshot, error) {
	var out models.DashboardSnapshot
	if err := d.t.Get(ctx, "/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rooms returns only the room cards.
func (d *Dashboard) Rooms(ctx context.Context) ([]models.DashboardRoomCard, error) {
	var out []models.DashboardRoomCard
	if err := d.t.Get(ctx, "/dashboard/rooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns only the aggregate counters.
func (d *Dashboard) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := d.t.Get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OvertimeAlerts returns the rooms currently past their expected checkout.
func (d *Dashboard) OvertimeAlerts(ctx context.Context) (*models.OvertimeAlertList, error) {
	var out models.OvertimeAlertList
	if err := d.t.Get(ctx, "/dashboard/overtime-alerts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
