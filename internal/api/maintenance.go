// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Maintenance calls the repair task endpoints.
type Maintenance struct {
	t *transport.Client
}

func NewMaintenance(t *transport.Client) *Maintenance {
	return &Maintenance{t: t}
}

// Tasks returns a page of maintenance tasks matching the filter.
func (m *Maintenance) Tasks(ctx context.Context, f models.TaskFilter, skip, limit int) (*models.MaintenanceTaskList, error) {
	q := url.Values{}
	setInt(q, "skip", skip)
	setInt(q, "limit", limit)
	setStr(q, "status", string(f.Status))
	setStr(q, "priority", string(f.Priority))
	setStr(q, "category", string(f.Category))
	setInt(q, "assigned_to", f.AssignedTo)
	setInt(q, "room_id", f.RoomID)

	var out models.MaintenanceTaskList
	if err := m.t.Get(ctx, "/maintenance/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Task returns one task by id.
func (m *Maintenance) Task(ctx context.Context, id int) (*models.MaintenanceTask, error) {
	var out models.MaintenanceTask
	if err := m.t.Get(ctx, fmt.Sprintf("/maintenance/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a task.
func (m *Maintenance) Create(ctx context.Context, in models.MaintenanceTaskInput) (*models.MaintenanceTask, error) {
	var out models.MaintenanceTask
	if err := m.t.Post(ctx, "/maintenance/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Photo is a file attachment for a maintenance report.
type Photo struct {
	Filename string
	Content  io.Reader
}

// CreateWithPhotos adds a task with photo attachments as a multipart request.
func (m *Maintenance) CreateWithPhotos(ctx context.Context, in models.MaintenanceTaskInput, photos []Photo) (*models.MaintenanceTask, error) {
	payload := transport.NewMultipartPayload().
		AddField("room_id", strconv.Itoa(in.RoomID)).
		AddField("category", string(in.Category)).
		AddField("title", in.Title)
	if in.Description != "" {
		payload.AddField("description", in.Description)
	}
	if in.Priority != "" {
		payload.AddField("priority", string(in.Priority))
	}
	if in.AssignedTo != 0 {
		payload.AddField("assigned_to", strconv.Itoa(in.AssignedTo))
	}
	for _, p := range photos {
		payload.AddFile("photos", p.Filename, p.Content)
	}

	var out models.MaintenanceTask
	if err := m.t.PostMultipart(ctx, "/maintenance/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the mutable fields of a task.
func (m *Maintenance) Update(ctx context.Context, id int, in models.MaintenanceTaskUpdate) (*models.MaintenanceTask, error) {
	var out models.MaintenanceTask
	if err := m.t.Put(ctx, fmt.Sprintf("/maintenance/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Start moves a task to in_progress.
func (m *Maintenance) Start(ctx context.Context, id int, in models.TaskTransitionInput) (*models.MaintenanceTask, error) {
	var out models.MaintenanceTask
	if err := m.t.Post(ctx, fmt.Sprintf("/maintenance/%d/start", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Complete moves a task to completed.
func (m *Maintenance) Complete(ctx context.Context, id int, in models.TaskTransitionInput) (*models.MaintenanceTask, error) {
	var out models.MaintenanceTask
	if err := m.t.Post(ctx, fmt.Sprintf("/maintenance/%d/complete", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel voids a task.
func (m *Maintenance) Cancel(ctx context.Context, id int) (*models.MaintenanceTask, error) {
	var out models.MaintenanceTask
	if err := m.t.Post(ctx, fmt.Sprintf("/maintenance/%d/cancel", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the task count summary.
func (m *Maintenance) Stats(ctx context.Context) (*models.MaintenanceStats, error) {
	var out models.MaintenanceStats
	if err := m.t.Get(ctx, "/maintenance/stats/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
