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

// Breakers calls the smart breaker (Home Assistant bridge) endpoints.
type Breakers struct {
	t *transport.Client
}

func NewBreakers(t *transport.Client) *Breakers {
	return &Breakers{t: t}
}

// List returns breakers matching the filter.
func (b *Breakers) List(ctx context.Context, f models.BreakerListFilter) (*models.BreakerList, error) {
	q := url.Values{}
	setInt(q, "room_id", f.RoomID)
	setBoolPtr(q, "auto_control_enabled", f.AutoControlEnabled)
	setStr(q, "current_state", string(f.CurrentState))
	setBoolPtr(q, "is_active", f.IsActive)

	var out models.BreakerList
	if err := b.t.Get(ctx, "/breakers/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one breaker by id.
func (b *Breakers) Get(ctx context.Context, id int) (*models.Breaker, error) {
	var out models.Breaker
	if err := b.t.Get(ctx, fmt.Sprintf("/breakers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a breaker.
func (b *Breakers) Create(ctx context.Context, in models.BreakerInput) (*models.Breaker, error) {
	var out models.Breaker
	if err := b.t.Post(ctx, "/breakers/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a breaker's configuration.
func (b *Breakers) Update(ctx context.Context, id int, in models.BreakerInput) (*models.Breaker, error) {
	var out models.Breaker
	if err := b.t.Put(ctx, fmt.Sprintf("/breakers/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a breaker.
func (b *Breakers) Delete(ctx context.Context, id int) error {
	return b.t.Delete(ctx, fmt.Sprintf("/breakers/%d", id), nil)
}

// TurnOn switches a breaker on. reason is recorded in the activity log.
func (b *Breakers) TurnOn(ctx context.Context, id int, reason string) (*models.BreakerControlResult, error) {
	body := map[string]string{"reason": reason}
	var out models.BreakerControlResult
	if err := b.t.Post(ctx, fmt.Sprintf("/breakers/%d/turn-on", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TurnOff switches a breaker off.
func (b *Breakers) TurnOff(ctx context.Context, id int, reason string) (*models.BreakerControlResult, error) {
	body := map[string]string{"reason": reason}
	var out models.BreakerControlResult
	if err := b.t.Post(ctx, fmt.Sprintf("/breakers/%d/turn-off", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sync refreshes one breaker's state from Home Assistant.
func (b *Breakers) Sync(ctx context.Context, id int) (*models.BreakerSyncResult, error) {
	var out models.BreakerSyncResult
	if err := b.t.Post(ctx, fmt.Sprintf("/breakers/%d/sync-status", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncAll refreshes every breaker's state from Home Assistant.
func (b *Breakers) SyncAll(ctx context.Context) (*models.BreakerFleetSyncResult, error) {
	var out models.BreakerFleetSyncResult
	if err := b.t.Post(ctx, "/breakers/sync-all", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityLogs returns control history for one breaker.
func (b *Breakers) ActivityLogs(ctx context.Context, id int, f models.BreakerLogFilter) (*models.BreakerActivityLogList, error) {
	var out models.BreakerActivityLogList
	if err := b.t.Get(ctx, fmt.Sprintf("/breakers/%d/logs", id), logFilterQuery(f), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllActivityLogs returns control history across the fleet.
func (b *Breakers) AllActivityLogs(ctx context.Context, f models.BreakerLogFilter) (*models.BreakerActivityLogList, error) {
	var out models.BreakerActivityLogList
	if err := b.t.Get(ctx, "/breakers/logs/all", logFilterQuery(f), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Statistics returns the fleet-wide breaker summary.
func (b *Breakers) Statistics(ctx context.Context) (*models.BreakerStatistics, error) {
	var out models.BreakerStatistics
	if err := b.t.Get(ctx, "/breakers/stats/overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func logFilterQuery(f models.BreakerLogFilter) url.Values {
	q := url.Values{}
	setInt(q, "breaker_id", f.BreakerID)
	setStr(q, "action", string(f.Action))
	setStr(q, "trigger_type", string(f.TriggerType))
	setStr(q, "status", string(f.Status))
	setStr(q, "start_date", f.StartDate)
	setStr(q, "end_date", f.EndDate)
	setInt(q, "limit", f.Limit)
	setInt(q, "offset", f.Offset)
	return q
}
