// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Bookings calls the reservation endpoints.
type Bookings struct {
	t *transport.Client
}

func NewBookings(t *transport.Client) *Bookings {
	return &Bookings{t: t}
}

// Create adds a booking.
func (b *Bookings) Create(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	var out models.Booking
	if err := b.t.Post(ctx, "/bookings/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns a page of bookings matching the filter.
func (b *Bookings) List(ctx context.Context, f models.BookingFilter, skip, limit int) (*models.BookingList, error) {
	q := url.Values{}
	setInt(q, "skip", skip)
	setInt(q, "limit", limit)
	setStr(q, "status", string(f.Status))
	setInt(q, "room_id", f.RoomID)
	setInt(q, "customer_id", f.CustomerID)
	setStr(q, "start_date", f.StartDate)
	setStr(q, "end_date", f.EndDate)

	var out models.BookingList
	if err := b.t.Get(ctx, "/bookings/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one booking by id.
func (b *Bookings) Get(ctx context.Context, id int) (*models.Booking, error) {
	var out models.Booking
	if err := b.t.Get(ctx, fmt.Sprintf("/bookings/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the mutable fields of a booking.
func (b *Bookings) Update(ctx context.Context, id int, in models.BookingUpdate) (*models.Booking, error) {
	var out models.Booking
	if err := b.t.Put(ctx, fmt.Sprintf("/bookings/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel cancels a booking and returns its final record.
func (b *Bookings) Cancel(ctx context.Context, id int) (*models.Booking, error) {
	var out models.Booking
	if err := b.t.Delete(ctx, fmt.Sprintf("/bookings/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CalendarEvents returns bookings projected for the calendar view.
func (b *Bookings) CalendarEvents(ctx context.Context, startDate, endDate string) ([]models.BookingCalendarEvent, error) {
	q := url.Values{}
	setStr(q, "start_date", startDate)
	setStr(q, "end_date", endDate)

	var out []models.BookingCalendarEvent
	if err := b.t.Get(ctx, "/bookings/calendar/events", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicHolidays returns the holidays for one year.
func (b *Bookings) PublicHolidays(ctx context.Context, year int) ([]models.PublicHoliday, error) {
	var out []models.PublicHoliday
	if err := b.t.Get(ctx, fmt.Sprintf("/bookings/calendar/public-holidays/%d", year), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckAvailability asks whether a room is free for a date range.
func (b *Bookings) CheckAvailability(ctx context.Context, in models.AvailabilityCheck) (*models.AvailabilityResult, error) {
	var out models.AvailabilityResult
	if err := b.t.Post(ctx, "/bookings/check-availability", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByRoomAndDate returns the confirmed booking covering a room on a date. It
// is used by the check-in flow as an enrichment and is best-effort: failures
// are logged and reported as no booking found.
func (b *Bookings) ByRoomAndDate(ctx context.Context, roomID int, date string) *models.Booking {
	q := url.Values{}
	setIntAlways(q, "room_id", roomID)
	q.Set("start_date", date)
	q.Set("end_date", date)
	q.Set("status", string(models.BookingConfirmed))
	q.Set("limit", "1")

	var out models.BookingList
	if err := b.t.Get(ctx, "/bookings/", q, &out); err != nil {
		logging.Warn().Err(err).Int("room_id", roomID).Str("date", date).
			Msg("Booking lookup by room and date failed")
		return nil
	}
	if len(out.Data) == 0 {
		return nil
	}
	return &out.Data[0]
}
