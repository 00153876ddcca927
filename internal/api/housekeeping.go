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

// Housekeeping calls the cleaning task endpoints.
type Housekeeping struct {
	t *transport.Client
}

func NewHousekeeping(t *transport.Client) *Housekeeping {
	return &Housekeeping{t: t}
}

// Tasks returns a page of housekeeping tasks matching the filter.
func (h *Housekeeping) Tasks(ctx context.Context, f models.TaskFilter, skip, limit int) (*models.HousekeepingTaskList, error) {
	q := url.Values{}
	setInt(q, "skip", skip)
	setInt(q, "limit", limit)
	setStr(q, "status", string(f.Status))
	setStr(q, "priority", string(f.Priority))
	setInt(q, "assigned_to", f.AssignedTo)
	setInt(q, "room_id", f.RoomID)

	var out models.HousekeepingTaskList
	if err := h.t.Get(ctx, "/housekeeping", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Task returns one task by id.
func (h *Housekeeping) Task(ctx context.Context, id int) (*models.HousekeepingTask, error) {
	var out models.HousekeepingTask
	if err := h.t.Get(ctx, fmt.Sprintf("/housekeeping/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a task.
func (h *Housekeeping) Create(ctx context.Context, in models.HousekeepingTaskInput) (*models.HousekeepingTask, error) {
	var out models.HousekeepingTask
	if err := h.t.Post(ctx, "/housekeeping", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the mutable fields of a task.
func (h *Housekeeping) Update(ctx context.Context, id int, in models.HousekeepingTaskUpdate) (*models.HousekeepingTask, error) {
	var out models.HousekeepingTask
	if err := h.t.Put(ctx, fmt.Sprintf("/housekeeping/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Start moves a task to in_progress.
func (h *Housekeeping) Start(ctx context.Context, id int, in models.TaskTransitionInput) (*models.HousekeepingTask, error) {
	var out models.HousekeepingTask
	if err := h.t.Post(ctx, fmt.Sprintf("/housekeeping/%d/start", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Complete moves a task to completed.
func (h *Housekeeping) Complete(ctx context.Context, id int, in models.TaskTransitionInput) (*models.HousekeepingTask, error) {
	var out models.HousekeepingTask
	if err := h.t.Post(ctx, fmt.Sprintf("/housekeeping/%d/complete", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the task count summary.
func (h *Housekeeping) Stats(ctx context.Context) (*models.HousekeepingStats, error) {
	var out models.HousekeepingStats
	if err := h.t.Get(ctx, "/housekeeping/stats/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
