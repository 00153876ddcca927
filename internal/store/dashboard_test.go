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

const dashboardRoomsBody = `[
	{"id": 1, "room_number": "101", "floor": 1, "status": "AVAILABLE", "room_type_id": 1, "room_type_name": "Standard", "is_overtime": false, "is_active": true},
	{"id": 2, "room_number": "102", "floor": 1, "status": "OCCUPIED", "room_type_id": 1, "room_type_name": "Standard", "check_in_id": 7, "customer_name": "Ann Lee", "is_overtime": false, "is_active": true}
]`

const dashboardStatsBody = `{"total_rooms": 2, "available_rooms": 1, "occupied_rooms": 1, "occupancy_rate": 50.0, "revenue_today": "120.00"}`

func newDashboardStore(t *testing.T, b *backend) *Dashboard {
	t.Helper()
	tc := b.client()
	return NewDashboard(api.NewDashboard(tc), api.NewMaintenance(tc))
}

func TestDashboardRefreshEnrichesMaintenanceCount(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /dashboard", 200, `{"rooms": `+dashboardRoomsBody+`, "stats": `+dashboardStatsBody+`, "last_updated": "2026-08-30T10:00:00Z"}`)
	b.handleJSON("GET /dashboard/overtime-alerts", 200, `{"data": [], "total": 0}`)
	b.handleJSON("GET /maintenance/stats/summary", 200, `{"total_tasks": 9, "pending_tasks": 3, "in_progress_tasks": 2, "completed_today": 4, "by_category": {}, "by_priority": {}}`)

	s := newDashboardStore(t, b)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if got := len(s.Rooms()); got != 2 {
		t.Fatalf("rooms = %d, want 2", got)
	}
	stats := s.Stats()
	if stats == nil {
		t.Fatal("stats not loaded")
	}
	if stats.PendingMaintenanceCount != 5 {
		t.Errorf("pending maintenance = %d, want pending+in_progress = 5", stats.PendingMaintenanceCount)
	}
	if stats.RevenueToday != "120.00" {
		t.Errorf("revenue = %q, want verbatim decimal string", stats.RevenueToday)
	}
}

func TestDashboardRefreshSurvivesMaintenanceStatsFailure(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /dashboard", 200, `{"rooms": `+dashboardRoomsBody+`, "stats": `+dashboardStatsBody+`, "last_updated": "2026-08-30T10:00:00Z"}`)
	b.handleJSON("GET /dashboard/overtime-alerts", 200, `{"data": [], "total": 0}`)
	// no maintenance route: the enrichment 404s

	s := newDashboardStore(t, b)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh should tolerate a failed maintenance enrichment: %v", err)
	}
	if s.Stats().PendingMaintenanceCount != 0 {
		t.Errorf("pending maintenance = %d, want 0 when enrichment fails", s.Stats().PendingMaintenanceCount)
	}
}

func TestDashboardOvertimeAlertUpsertsAndFlipsRoom(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /dashboard", 200, `{"rooms": `+dashboardRoomsBody+`, "stats": `+dashboardStatsBody+`, "last_updated": "2026-08-30T10:00:00Z"}`)
	b.handleJSON("GET /dashboard/overtime-alerts", 200, `{"data": [], "total": 0}`)
	b.handleJSON("GET /maintenance/stats/summary", 200, `{"total_tasks": 0, "pending_tasks": 0, "in_progress_tasks": 0, "completed_today": 0, "by_category": {}, "by_priority": {}}`)

	s := newDashboardStore(t, b)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	sess, fc := newFeedSession(t)
	unbind := s.Bind(context.Background(), sess)
	defer unbind()

	alert := models.OvertimeAlert{RoomID: 2, RoomNumber: "102", CheckInID: 7, CustomerName: "Ann Lee", OvertimeMinutes: 35}
	fc.sendEnvelope(t, models.EventOvertimeAlert, alert)

	waitFor(t, "alert upsert", func() bool { return len(s.OvertimeAlerts()) == 1 })
	room, ok := s.RoomByID(2)
	if !ok {
		t.Fatal("room 2 missing")
	}
	if !room.IsOvertime || room.OvertimeMinutes == nil || *room.OvertimeMinutes != 35 {
		t.Errorf("room card not flipped: overtime=%v minutes=%v", room.IsOvertime, room.OvertimeMinutes)
	}

	// A second alert for the same room replaces, never duplicates.
	alert.OvertimeMinutes = 50
	fc.sendEnvelope(t, models.EventOvertimeAlert, alert)
	waitFor(t, "alert replace", func() bool {
		alerts := s.OvertimeAlerts()
		return len(alerts) == 1 && alerts[0].OvertimeMinutes == 50
	})
}

func TestDashboardCheckOutDropsAlertAndRefetches(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /dashboard", 200, `{"rooms": `+dashboardRoomsBody+`, "stats": `+dashboardStatsBody+`, "last_updated": "2026-08-30T10:00:00Z"}`)
	b.handleJSON("GET /dashboard/rooms", 200, dashboardRoomsBody)
	b.handleJSON("GET /dashboard/stats", 200, dashboardStatsBody)
	b.handleJSON("GET /dashboard/overtime-alerts", 200, `{"data": [{"room_id": 2, "room_number": "102", "check_in_id": 7, "customer_name": "Ann Lee", "overtime_minutes": 10}], "total": 1}`)
	b.handleJSON("GET /maintenance/stats/summary", 200, `{"total_tasks": 0, "pending_tasks": 0, "in_progress_tasks": 0, "completed_today": 0, "by_category": {}, "by_priority": {}}`)

	s := newDashboardStore(t, b)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(s.OvertimeAlerts()) != 1 {
		t.Fatal("alert not seeded")
	}

	sess, fc := newFeedSession(t)
	unbind := s.Bind(context.Background(), sess)
	defer unbind()

	fc.sendEnvelope(t, models.EventCheckOut, models.CheckOutEvent{RoomID: 2, RoomNumber: "102"})

	waitFor(t, "alert removal", func() bool { return len(s.OvertimeAlerts()) == 0 })
	waitFor(t, "room refetch", func() bool { return b.hitCount("GET /dashboard/rooms") >= 1 })
	waitFor(t, "stats refetch", func() bool { return b.hitCount("GET /dashboard/stats") >= 1 })
}

func TestDashboardRoomStatusChangeRefetches(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /dashboard/rooms", 200, dashboardRoomsBody)
	b.handleJSON("GET /dashboard/stats", 200, dashboardStatsBody)

	s := newDashboardStore(t, b)
	sess, fc := newFeedSession(t)
	unbind := s.Bind(context.Background(), sess)
	defer unbind()

	fc.sendEnvelope(t, models.EventRoomStatusChanged, models.RoomStatusChangedEvent{RoomID: 1, OldStatus: "AVAILABLE", NewStatus: "CLEANING"})

	waitFor(t, "room refetch", func() bool { return b.hitCount("GET /dashboard/rooms") >= 1 })
	waitFor(t, "rooms cached", func() bool { return len(s.Rooms()) == 2 })
}
