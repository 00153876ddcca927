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

const activeStayBody = `{"id": 7, "room_id": 2, "customer_id": 1, "stay_type": "OVERNIGHT", "number_of_guests": 2, "check_in_time": "2026-08-30T14:00:00Z", "expected_check_out_time": "2026-08-31T12:00:00Z", "base_amount": 80, "total_amount": 80, "status": "checked_in", "created_by": 1, "created_at": "2026-08-30T14:00:00Z", "updated_at": "2026-08-30T14:00:00Z"}`

func newCheckInStore(t *testing.T, b *backend) *CheckIns {
	t.Helper()
	tc := b.client()
	return NewCheckIns(api.NewCheckIns(tc), api.NewBookings(tc))
}

func TestCheckInsSetRoomLoadsActiveStay(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /check-ins/room/2/active", 200, activeStayBody)

	s := newCheckInStore(t, b)
	if err := s.SetRoom(context.Background(), 2); err != nil {
		t.Fatalf("SetRoom: %v", err)
	}

	current := s.Current()
	if current == nil || current.ID != 7 {
		t.Fatalf("current = %+v, want stay 7", current)
	}
}

func TestCheckInsVacantRoomIsNotAnError(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /check-ins/room/3/active", 404, `{"detail": "No active check-in for this room"}`)

	s := newCheckInStore(t, b)
	if err := s.SetRoom(context.Background(), 3); err != nil {
		t.Fatalf("SetRoom on a vacant room must not error: %v", err)
	}
	if s.Current() != nil {
		t.Error("current stay should be nil for a vacant room")
	}
	if s.Err() != "" {
		t.Errorf("err = %q, want empty", s.Err())
	}
}

func TestCheckInsCheckoutClearsCurrent(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /check-ins/room/2/active", 200, activeStayBody)
	b.handleJSON("GET /check-ins/7/checkout-summary", 200, `{"check_in_id": 7, "room_number": "102", "customer_name": "Ann Lee", "stay_type": "OVERNIGHT", "check_in_time": "2026-08-30T14:00:00Z", "expected_check_out_time": "2026-08-31T12:00:00Z", "actual_check_out_time": "2026-08-31T11:30:00Z", "base_amount": 80, "is_overtime": false, "overtime_charge": 0, "extra_charges": 0, "discount_amount": 0, "total_amount": 80}`)
	b.handleJSON("POST /check-ins/7/checkout", 200, `{"id": 7, "room_id": 2, "customer_id": 1, "stay_type": "OVERNIGHT", "number_of_guests": 2, "check_in_time": "2026-08-30T14:00:00Z", "expected_check_out_time": "2026-08-31T12:00:00Z", "actual_check_out_time": "2026-08-31T11:30:00Z", "base_amount": 80, "total_amount": 80, "status": "checked_out", "created_by": 1, "created_at": "2026-08-30T14:00:00Z", "updated_at": "2026-08-31T11:30:00Z"}`)

	s := newCheckInStore(t, b)
	if err := s.SetRoom(context.Background(), 2); err != nil {
		t.Fatalf("SetRoom: %v", err)
	}

	sum, err := s.FetchCheckoutSummary(context.Background())
	if err != nil {
		t.Fatalf("FetchCheckoutSummary: %v", err)
	}
	if sum.TotalAmount != 80 {
		t.Errorf("summary total = %v, want 80", sum.TotalAmount)
	}

	done, err := s.Checkout(context.Background(), models.CheckOutInput{PaymentMethod: models.PayCash})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if done.Status != models.CheckedOut {
		t.Errorf("status = %s, want checked_out", done.Status)
	}
	if s.Current() != nil || s.Summary() != nil {
		t.Error("checkout should clear the tracked stay and summary")
	}
}

func TestCheckInsTransferRetargetsRoom(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /check-ins/room/2/active", 200, activeStayBody)
	b.handleJSON("POST /check-ins/7/transfer-room", 200, `{"check_in_id": 7, "old_room_id": 2, "old_room_number": "102", "new_room_id": 5, "new_room_number": "105", "transferred_by": 1, "transferred_at": "2026-08-30T16:00:00Z", "message": "ok"}`)
	b.handleJSON("GET /check-ins/room/5/active", 200, `{"id": 7, "room_id": 5, "customer_id": 1, "stay_type": "OVERNIGHT", "number_of_guests": 2, "check_in_time": "2026-08-30T14:00:00Z", "expected_check_out_time": "2026-08-31T12:00:00Z", "base_amount": 80, "total_amount": 80, "status": "checked_in", "created_by": 1, "created_at": "2026-08-30T14:00:00Z", "updated_at": "2026-08-30T16:00:00Z"}`)

	s := newCheckInStore(t, b)
	if err := s.SetRoom(context.Background(), 2); err != nil {
		t.Fatalf("SetRoom: %v", err)
	}

	res, err := s.Transfer(context.Background(), models.RoomTransferInput{NewRoomID: 5, Reason: "aircon broken"})
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if res.NewRoomNumber != "105" {
		t.Errorf("new room = %q, want 105", res.NewRoomNumber)
	}

	current := s.Current()
	if current == nil || current.RoomID != 5 {
		t.Errorf("current = %+v, want stay retargeted at room 5", current)
	}
}

func TestCheckInsBindRefetchesTrackedRoom(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /check-ins/room/2/active", 200, activeStayBody)

	s := newCheckInStore(t, b)
	if err := s.SetRoom(context.Background(), 2); err != nil {
		t.Fatalf("SetRoom: %v", err)
	}

	sess, fc := newFeedSession(t)
	unbind := s.Bind(context.Background(), sess)
	defer unbind()

	// An event for another room must not trigger a refetch.
	fc.sendEnvelope(t, models.EventCheckIn, models.CheckInEvent{RoomID: 9, RoomNumber: "109"})
	// The tracked room checking out clears the current stay.
	b.handleJSON("GET /check-ins/room/2/active", 404, `{"detail": "No active check-in for this room"}`)
	fc.sendEnvelope(t, models.EventCheckOut, models.CheckOutEvent{RoomID: 2, RoomNumber: "102"})

	waitFor(t, "stay cleared", func() bool { return s.Current() == nil })
	if got := b.hitCount("GET /check-ins/room/9/active"); got != 0 {
		t.Errorf("unrelated room fetched %d times, want 0", got)
	}
}
