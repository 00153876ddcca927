// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"testing"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/models"
)

const maintenanceBoardBody = `{"tasks": [
	{"id": 21, "room_id": 4, "category": "ELECTRICAL", "title": "Socket sparking", "priority": "URGENT", "status": "PENDING", "created_by": 1, "created_at": "2026-08-30T08:00:00Z", "updated_at": "2026-08-30T08:00:00Z"},
	{"id": 20, "room_id": 2, "category": "PLUMBING", "title": "Dripping tap", "priority": "LOW", "status": "IN_PROGRESS", "created_by": 1, "created_at": "2026-08-29T15:00:00Z", "updated_at": "2026-08-30T07:00:00Z"}
], "total": 7, "skip": 0, "limit": 50}`

func newMaintenanceStore(t *testing.T, b *backend) *Maintenance {
	t.Helper()
	return NewMaintenance(api.NewMaintenance(b.client()))
}

func TestMaintenanceFetchReadsTasksEnvelope(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /maintenance/", 200, maintenanceBoardBody)

	s := newMaintenanceStore(t, b)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 2 || tasks[0].ID != 21 {
		t.Fatalf("tasks not read from envelope: %+v", tasks)
	}
	if tasks[0].Category != models.CategoryElectrical {
		t.Errorf("category = %q, want %q", tasks[0].Category, models.CategoryElectrical)
	}
	if s.Total() != 7 {
		t.Errorf("total = %d, want the board size, not the page size", s.Total())
	}
}

func TestMaintenanceCancelPatchesTaskInPlace(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /maintenance/", 200, maintenanceBoardBody)
	b.handleJSON("POST /maintenance/20/cancel", 200, `{"id": 20, "room_id": 2, "category": "PLUMBING", "title": "Dripping tap", "priority": "LOW", "status": "CANCELLED", "created_by": 1, "created_at": "2026-08-29T15:00:00Z", "updated_at": "2026-08-31T00:00:00Z"}`)

	s := newMaintenanceStore(t, b)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if _, err := s.Cancel(context.Background(), 20); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("cancel changed the board size, have %d tasks", len(tasks))
	}
	if tasks[1].ID != 20 || tasks[1].Status != models.TaskCancelled {
		t.Errorf("cancelled task not patched in place: %+v", tasks[1])
	}
	if tasks[0].Status != models.TaskPending {
		t.Errorf("unrelated task touched by cancel: %+v", tasks[0])
	}
}
