// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"sync"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/realtime"
	"github.com/roomline/roomline-go/internal/transport"
)

// CheckIns tracks the active stay of one room at a time (the room the
// operator is working on) plus the checkout settlement preview.
type CheckIns struct {
	api      *api.CheckIns
	bookings *api.Bookings

	mu       sync.RWMutex
	roomID   int
	current  *models.CheckIn
	summary  *models.CheckOutSummary
	loading  bool
	err      string
}

// NewCheckIns creates the stay store. bookings is optional; when present,
// LookupBooking enriches the check-in form with a confirmed reservation.
func NewCheckIns(a *api.CheckIns, b *api.Bookings) *CheckIns {
	return &CheckIns{api: a, bookings: b}
}

// SetRoom selects the room whose active stay this store tracks and loads
// its active check-in. A room without one clears the current record.
func (s *CheckIns) SetRoom(ctx context.Context, roomID int) error {
	s.mu.Lock()
	s.roomID = roomID
	s.mu.Unlock()
	return s.refetchActive(ctx)
}

// refetchActive reloads the tracked room's active check-in. A 404 is the
// no-active-stay answer, not an error.
func (s *CheckIns) refetchActive(ctx context.Context) error {
	s.mu.Lock()
	roomID := s.roomID
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	if roomID == 0 {
		s.mu.Lock()
		s.loading = false
		s.current = nil
		s.mu.Unlock()
		return nil
	}

	ci, err := s.api.ActiveByRoom(ctx, roomID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if transport.IsNotFound(err) {
		s.current = nil
		return nil
	}
	if err != nil {
		s.err = errMessage(err, "could not load active check-in")
		return err
	}
	s.current = ci
	return nil
}

// Create opens a stay and makes it the current record.
func (s *CheckIns) Create(ctx context.Context, in models.CheckInInput) (*models.CheckIn, error) {
	ci, err := s.api.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not check in")
		return nil, err
	}
	s.mu.Lock()
	s.roomID = ci.RoomID
	s.current = ci
	s.summary = nil
	s.mu.Unlock()
	return ci, nil
}

// FetchCheckoutSummary loads the settlement preview for the current stay.
func (s *CheckIns) FetchCheckoutSummary(ctx context.Context) (*models.CheckOutSummary, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return nil, nil
	}

	sum, err := s.api.CheckoutSummary(ctx, current.ID)
	if err != nil {
		s.setErr(err, "could not load checkout summary")
		return nil, err
	}
	s.mu.Lock()
	s.summary = sum
	s.mu.Unlock()
	return sum, nil
}

// Checkout settles the current stay and clears it.
func (s *CheckIns) Checkout(ctx context.Context, in models.CheckOutInput) (*models.CheckIn, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return nil, nil
	}

	ci, err := s.api.Checkout(ctx, current.ID, in)
	if err != nil {
		s.setErr(err, "could not check out")
		return nil, err
	}
	s.mu.Lock()
	s.current = nil
	s.summary = nil
	s.mu.Unlock()
	return ci, nil
}

// Transfer moves the current stay to another room and retargets the store
// at the new room.
func (s *CheckIns) Transfer(ctx context.Context, in models.RoomTransferInput) (*models.RoomTransferResult, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return nil, nil
	}

	res, err := s.api.Transfer(ctx, current.ID, in)
	if err != nil {
		s.setErr(err, "could not transfer room")
		return nil, err
	}
	s.mu.Lock()
	s.roomID = res.NewRoomID
	s.mu.Unlock()
	if err := s.refetchActive(ctx); err != nil {
		logging.Warn().Err(err).Msg("Active check-in refetch after transfer failed")
	}
	return res, nil
}

// LookupBooking finds the confirmed reservation covering the tracked room
// today, best-effort, for pre-filling the check-in form.
func (s *CheckIns) LookupBooking(ctx context.Context, date string) *models.Booking {
	if s.bookings == nil {
		return nil
	}
	s.mu.RLock()
	roomID := s.roomID
	s.mu.RUnlock()
	if roomID == 0 {
		return nil
	}
	return s.bookings.ByRoomAndDate(ctx, roomID, date)
}

// Current returns the tracked stay, nil when the room is free.
func (s *CheckIns) Current() *models.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	ci := *s.current
	return &ci
}

// Summary returns the last fetched checkout preview.
func (s *CheckIns) Summary() *models.CheckOutSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return nil
	}
	sum := *s.summary
	return &sum
}

// Err returns the last error message.
func (s *CheckIns) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether an active-stay fetch is in flight.
func (s *CheckIns) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Bind refetches the tracked room's active stay when a check-in, check-out
// or transfer touches it. Returns the unbind func.
func (s *CheckIns) Bind(ctx context.Context, sess *realtime.Session) func() {
	refetchIfTracked := func(event string, roomID int) {
		s.mu.RLock()
		tracked := s.roomID
		s.mu.RUnlock()
		if tracked == 0 || roomID != tracked {
			return
		}
		metrics.StoreRefetches.WithLabelValues("checkins", event).Inc()
		if err := s.refetchActive(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Active check-in refetch failed")
		}
	}

	unsubs := []func(){
		sess.On(models.EventCheckIn, func(env models.Envelope) {
			var ev models.CheckInEvent
			if err := unmarshalEvent(env, &ev); err != nil {
				return
			}
			refetchIfTracked(env.Event, ev.RoomID)
		}),
		sess.On(models.EventCheckOut, func(env models.Envelope) {
			var ev models.CheckOutEvent
			if err := unmarshalEvent(env, &ev); err != nil {
				return
			}
			refetchIfTracked(env.Event, ev.RoomID)
		}),
		sess.On(models.EventRoomTransfer, func(env models.Envelope) {
			var ev models.RoomTransferEvent
			if err := unmarshalEvent(env, &ev); err != nil {
				return
			}
			refetchIfTracked(env.Event, ev.FromRoomID)
			refetchIfTracked(env.Event, ev.ToRoomID)
		}),
	}
	return unbindAll(unsubs)
}

func (s *CheckIns) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
