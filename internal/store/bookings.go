// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"sync"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/models"
)

// Bookings caches the reservation list with its filter and pagination
// state, plus the calendar projection.
type Bookings struct {
	api *api.Bookings

	mu       sync.RWMutex
	bookings []models.Booking
	total    int
	skip     int
	limit    int
	filter   models.BookingFilter
	events   []models.BookingCalendarEvent
	holidays []models.PublicHoliday
	loading  bool
	err      string
}

func NewBookings(a *api.Bookings) *Bookings {
	return &Bookings{api: a, limit: 20}
}

// SetFilter replaces the list filter. The next Fetch starts from page one.
func (s *Bookings) SetFilter(f models.BookingFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.skip = 0
}

// SetPage moves the pagination window.
func (s *Bookings) SetPage(skip, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skip = skip
	s.limit = limit
}

// Fetch loads the current page under the current filter.
func (s *Bookings) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	f, skip, limit := s.filter, s.skip, s.limit
	s.mu.Unlock()

	list, err := s.api.List(ctx, f, skip, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load bookings")
		return err
	}
	s.bookings = list.Data
	s.total = list.Total
	return nil
}

// FetchCalendar loads the calendar events and holidays covering a range.
func (s *Bookings) FetchCalendar(ctx context.Context, startDate, endDate string, year int) error {
	evs, err := s.api.CalendarEvents(ctx, startDate, endDate)
	if err != nil {
		s.setErr(err, "could not load calendar")
		return err
	}
	hols, err := s.api.PublicHolidays(ctx, year)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errMessage(err, "could not load holidays")
		return err
	}
	s.events = evs
	s.holidays = hols
	return nil
}

// CheckAvailability asks the backend whether a room is free.
func (s *Bookings) CheckAvailability(ctx context.Context, in models.AvailabilityCheck) (*models.AvailabilityResult, error) {
	res, err := s.api.CheckAvailability(ctx, in)
	if err != nil {
		s.setErr(err, "could not check availability")
		return nil, err
	}
	return res, nil
}

// Create adds a booking and prepends the server's record to the cache.
func (s *Bookings) Create(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	b, err := s.api.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create booking")
		return nil, err
	}
	s.mu.Lock()
	s.bookings = append([]models.Booking{*b}, s.bookings...)
	s.total++
	s.mu.Unlock()
	return b, nil
}

// Update patches a booking in the backend and in place in the cache.
func (s *Bookings) Update(ctx context.Context, id int, in models.BookingUpdate) (*models.Booking, error) {
	b, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update booking")
		return nil, err
	}
	s.replace(*b)
	return b, nil
}

// Cancel cancels a booking; the cache keeps the record with its final
// cancelled status rather than dropping it.
func (s *Bookings) Cancel(ctx context.Context, id int) (*models.Booking, error) {
	b, err := s.api.Cancel(ctx, id)
	if err != nil {
		s.setErr(err, "could not cancel booking")
		return nil, err
	}
	s.replace(*b)
	return b, nil
}

// Bookings returns the cached page.
func (s *Bookings) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Total returns the filtered total across all pages.
func (s *Bookings) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// CalendarEvents returns the cached calendar projection.
func (s *Bookings) CalendarEvents() []models.BookingCalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BookingCalendarEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Holidays returns the cached holiday list.
func (s *Bookings) Holidays() []models.PublicHoliday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PublicHoliday, len(s.holidays))
	copy(out, s.holidays)
	return out
}

// Err returns the last error message.
func (s *Bookings) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a list fetch is in flight.
func (s *Bookings) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Bookings) replace(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			s.bookings[i] = b
			break
		}
	}
}

func (s *Bookings) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
