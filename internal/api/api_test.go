// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// recordedRequest captures what the backend saw for assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
}

func newBackend(t *testing.T, status int, body string) (*transport.Client, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return transport.New(transport.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}), rec
}

func TestRoomsListFilterEncoding(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK, `[]`)
	floor := 2
	active := true

	_, err := NewRooms(tc).List(context.Background(), models.RoomListFilter{
		Skip:     10,
		Limit:    50,
		Floor:    &floor,
		Status:   models.RoomAvailable,
		IsActive: &active,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Path != "/api/v1/rooms/" {
		t.Errorf("path = %q", rec.Path)
	}
	for _, want := range []string{"skip=10", "limit=50", "floor=2", "status=AVAILABLE", "is_active=true"} {
		if !strings.Contains(rec.Query, want) {
			t.Errorf("query %q missing %q", rec.Query, want)
		}
	}
}

func TestRoomsUpdateStatus(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK, `{"id": 4, "status": "CLEANING"}`)

	room, err := NewRooms(tc).UpdateStatus(context.Background(), 4, models.RoomCleaning)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Method != http.MethodPatch || rec.Path != "/api/v1/rooms/4/status" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if room.Status != models.RoomCleaning {
		t.Errorf("status = %q", room.Status)
	}
}

func TestBookingsCancelReturnsFinalRecord(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK, `{"id": 9, "status": "cancelled"}`)

	b, err := NewBookings(tc).Cancel(context.Background(), 9)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if rec.Method != http.MethodDelete || rec.Path != "/api/v1/bookings/9" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if b.Status != models.BookingCancelled {
		t.Errorf("status = %q", b.Status)
	}
}

func TestBookingsByRoomAndDateSwallowsErrors(t *testing.T) {
	tc, _ := newBackend(t, http.StatusInternalServerError, `{"detail": "boom"}`)

	if got := NewBookings(tc).ByRoomAndDate(context.Background(), 3, "2026-08-30"); got != nil {
		t.Errorf("ByRoomAndDate = %+v, want nil on error", got)
	}
}

func TestBookingsByRoomAndDateQuery(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK, `{"data": [{"id": 11}], "total": 1}`)

	got := NewBookings(tc).ByRoomAndDate(context.Background(), 3, "2026-08-30")
	if got == nil || got.ID != 11 {
		t.Fatalf("ByRoomAndDate = %+v", got)
	}
	for _, want := range []string{"room_id=3", "start_date=2026-08-30", "end_date=2026-08-30", "status=confirmed", "limit=1"} {
		if !strings.Contains(rec.Query, want) {
			t.Errorf("query %q missing %q", rec.Query, want)
		}
	}
}

func TestCheckInsTransferPath(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK,
		`{"check_in_id": 5, "old_room_number": "101", "new_room_number": "204", "message": "ok"}`)

	res, err := NewCheckIns(tc).Transfer(context.Background(), 5, models.RoomTransferInput{
		NewRoomID: 12,
		Reason:    "air conditioning fault",
	})
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if rec.Method != http.MethodPost || rec.Path != "/api/v1/check-ins/5/transfer-room" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if res.NewRoomNumber != "204" {
		t.Errorf("NewRoomNumber = %q", res.NewRoomNumber)
	}
}

func TestCheckInsActiveByRoomNotFound(t *testing.T) {
	tc, _ := newBackend(t, http.StatusNotFound, `{"detail": "No active check-in for this room"}`)

	_, err := NewCheckIns(tc).ActiveByRoom(context.Background(), 7)
	if !transport.IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false", err)
	}
}

func TestNotificationsUnreadCount(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK, `{"unread_count": 6}`)

	n, err := NewNotifications(tc).UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if rec.Path != "/api/v1/notifications/unread-count" {
		t.Errorf("path = %q", rec.Path)
	}
	if n != 6 {
		t.Errorf("count = %d, want 6", n)
	}
}

func TestNotificationsMarkReadVerb(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK, `{"id": 2, "is_read": true}`)

	got, err := NewNotifications(tc).MarkRead(context.Background(), 2)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if rec.Method != http.MethodPatch || rec.Path != "/api/v1/notifications/2/read" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if !got.IsRead {
		t.Error("IsRead = false")
	}
}

func TestMaintenanceCreateWithPhotos(t *testing.T) {
	var contentType, title string
	var photoCount int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		title = r.FormValue("title")
		photoCount = len(r.MultipartForm.File["photos"])
		w.Write([]byte(`{"id": 31}`))
	}))
	t.Cleanup(srv.Close)
	tc := transport.New(transport.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})

	task, err := NewMaintenance(tc).CreateWithPhotos(context.Background(),
		models.MaintenanceTaskInput{
			RoomID:   8,
			Category: models.CategoryElectrical,
			Title:    "Socket sparking",
			Priority: models.PriorityHigh,
		},
		[]Photo{
			{Filename: "socket1.jpg", Content: strings.NewReader("a")},
			{Filename: "socket2.jpg", Content: strings.NewReader("b")},
		})
	if err != nil {
		t.Fatalf("CreateWithPhotos: %v", err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q", contentType)
	}
	if title != "Socket sparking" {
		t.Errorf("title = %q", title)
	}
	if photoCount != 2 {
		t.Errorf("photos = %d, want 2", photoCount)
	}
	if task.ID != 31 {
		t.Errorf("task.ID = %d", task.ID)
	}
}

func TestBreakersTurnOnBody(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK,
		`{"success": true, "breaker_id": 3, "new_state": "ON", "message": "done"}`)

	res, err := NewBreakers(tc).TurnOn(context.Background(), 3, "guest checked in")
	if err != nil {
		t.Fatalf("TurnOn: %v", err)
	}
	if rec.Method != http.MethodPost || rec.Path != "/api/v1/breakers/3/turn-on" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if res.NewState != models.BreakerOn {
		t.Errorf("NewState = %q", res.NewState)
	}
}

func TestDashboardGet(t *testing.T) {
	tc, rec := newBackend(t, http.StatusOK,
		`{"rooms": [{"id": 1, "room_number": "101"}], "stats": {"total_rooms": 10}, "last_updated": "2026-08-30T10:00:00Z"}`)

	snap, err := NewDashboard(tc).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Path != "/api/v1/dashboard" {
		t.Errorf("path = %q", rec.Path)
	}
	if len(snap.Rooms) != 1 || snap.Rooms[0].RoomNumber != "101" {
		t.Errorf("rooms = %+v", snap.Rooms)
	}
	if snap.Stats.TotalRooms != 10 {
		t.Errorf("stats = %+v", snap.Stats)
	}
}
