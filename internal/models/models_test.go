// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestUserHasRoleCaseInsensitive(t *testing.T) {
	u := &User{ID: 1, Username: "nok", Role: "reception"}

	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{"exact", []string{"reception"}, true},
		{"uppercase allow-list", []string{"ADMIN", "RECEPTION"}, true},
		{"mixed case", []string{"Reception"}, true},
		{"not in list", []string{"ADMIN", "MAINTENANCE"}, false},
		{"empty list", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.HasRole(tt.roles); got != tt.want {
				t.Errorf("HasRole(%v) = %v, want %v", tt.roles, got, tt.want)
			}
		})
	}
}

func TestUserHasRoleNilReceiver(t *testing.T) {
	var u *User
	if u.HasRole([]string{"ADMIN"}) {
		t.Error("nil user must not match any role")
	}
}

func TestEnvelopeDecode(t *testing.T) {
	raw := []byte(`{"event":"room_status_changed","data":{"room_id":2,"old_status":"OCCUPIED","new_status":"CLEANING"},"timestamp":"2026-08-31T10:00:00Z"}`)

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Event != EventRoomStatusChanged {
		t.Errorf("event = %q, want %q", env.Event, EventRoomStatusChanged)
	}

	var payload RoomStatusChangedEvent
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.RoomID != 2 || payload.NewStatus != "CLEANING" {
		t.Errorf("payload = %+v, want room 2 CLEANING", payload)
	}
}

func TestDashboardStatsRevenueStaysVerbatim(t *testing.T) {
	// The backend serializes revenue as a decimal string; the client must not
	// reinterpret it.
	raw := []byte(`{"total_rooms":10,"available_rooms":4,"occupied_rooms":6,"cleaning_rooms":0,"reserved_rooms":0,"out_of_service_rooms":0,"occupancy_rate":60.0,"total_check_ins_today":3,"overnight_stays":2,"temporary_stays":1,"revenue_today":"12500.50"}`)

	var stats DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats.RevenueToday != "12500.50" {
		t.Errorf("revenue = %q, want verbatim string", stats.RevenueToday)
	}
}
