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

// Rooms caches the room inventory: rooms, room types, and the rate matrix.
// CRUD operations patch the cache in place from the backend's response so
// the cache never diverges from what the server persisted.
type Rooms struct {
	rooms *api.Rooms
	types *api.RoomTypes
	rates *api.RoomRates

	mu           sync.RWMutex
	roomList     []models.Room
	typeList     []models.RoomType
	rateList     []models.RoomRate
	rateMatrix   []models.RoomRateMatrixRow
	selectedRoom *models.Room
	loading      bool
	err          string
}

func NewRooms(r *api.Rooms, t *api.RoomTypes, rr *api.RoomRates) *Rooms {
	return &Rooms{rooms: r, types: t, rates: rr}
}

// FetchRooms loads rooms matching the filter into the cache.
func (s *Rooms) FetchRooms(ctx context.Context, f models.RoomListFilter) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	rooms, err := s.rooms.List(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load rooms")
		return err
	}
	s.roomList = rooms
	return nil
}

// FetchRoomTypes loads the room type catalog.
func (s *Rooms) FetchRoomTypes(ctx context.Context) error {
	types, err := s.types.List(ctx, 0, 0, nil)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errMessage(err, "could not load room types")
		return err
	}
	s.typeList = types
	return nil
}

// FetchRates loads rates and the display matrix.
func (s *Rooms) FetchRates(ctx context.Context, f api.RoomRateListFilter) error {
	rates, err := s.rates.List(ctx, f)
	if err != nil {
		s.mu.Lock()
		s.err = errMessage(err, "could not load room rates")
		s.mu.Unlock()
		return err
	}
	matrix, err := s.rates.Matrix(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errMessage(err, "could not load rate matrix")
		return err
	}
	s.rateList = rates
	s.rateMatrix = matrix
	return nil
}

// Rooms returns the cached room list.
func (s *Rooms) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, len(s.roomList))
	copy(out, s.roomList)
	return out
}

// RoomTypes returns the cached room type catalog.
func (s *Rooms) RoomTypes() []models.RoomType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RoomType, len(s.typeList))
	copy(out, s.typeList)
	return out
}

// Rates returns the cached rate list.
func (s *Rooms) Rates() []models.RoomRate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RoomRate, len(s.rateList))
	copy(out, s.rateList)
	return out
}

// RateMatrix returns the cached per-type rate grid.
func (s *Rooms) RateMatrix() []models.RoomRateMatrixRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RoomRateMatrixRow, len(s.rateMatrix))
	copy(out, s.rateMatrix)
	return out
}

// Select marks a room as the current record; nil clears it.
func (s *Rooms) Select(room *models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedRoom = room
}

// Selected returns the selected room, nil when none.
func (s *Rooms) Selected() *models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedRoom == nil {
		return nil
	}
	r := *s.selectedRoom
	return &r
}

// Err returns the last error message.
func (s *Rooms) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a room fetch is in flight.
func (s *Rooms) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// CreateRoom adds a room and appends the server's record to the cache.
func (s *Rooms) CreateRoom(ctx context.Context, in models.RoomInput) (*models.Room, error) {
	room, err := s.rooms.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create room")
		return nil, err
	}
	s.mu.Lock()
	s.roomList = append(s.roomList, *room)
	s.mu.Unlock()
	return room, nil
}

// UpdateRoom patches a room and replaces it in the cache.
func (s *Rooms) UpdateRoom(ctx context.Context, id int, in models.RoomInput) (*models.Room, error) {
	room, err := s.rooms.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update room")
		return nil, err
	}
	s.replaceRoom(*room)
	return room, nil
}

// UpdateRoomStatus changes one room's status and patches the cache.
func (s *Rooms) UpdateRoomStatus(ctx context.Context, id int, status models.RoomStatus) (*models.Room, error) {
	room, err := s.rooms.UpdateStatus(ctx, id, status)
	if err != nil {
		s.setErr(err, "could not update room status")
		return nil, err
	}
	s.replaceRoom(*room)
	return room, nil
}

// DeleteRoom removes a room from the backend and the cache.
func (s *Rooms) DeleteRoom(ctx context.Context, id int) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		s.setErr(err, "could not delete room")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.roomList[:0]
	for _, r := range s.roomList {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.roomList = kept
	if s.selectedRoom != nil && s.selectedRoom.ID == id {
		s.selectedRoom = nil
	}
	return nil
}

// CreateRoomType adds a room type to the backend and the cache.
func (s *Rooms) CreateRoomType(ctx context.Context, in models.RoomTypeInput) (*models.RoomType, error) {
	rt, err := s.types.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create room type")
		return nil, err
	}
	s.mu.Lock()
	s.typeList = append(s.typeList, *rt)
	s.mu.Unlock()
	return rt, nil
}

// UpdateRoomType patches a room type and replaces it in the cache.
func (s *Rooms) UpdateRoomType(ctx context.Context, id int, in models.RoomTypeInput) (*models.RoomType, error) {
	rt, err := s.types.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update room type")
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.typeList {
		if s.typeList[i].ID == rt.ID {
			s.typeList[i] = *rt
			break
		}
	}
	return rt, nil
}

// DeleteRoomType removes a room type from the backend and the cache.
func (s *Rooms) DeleteRoomType(ctx context.Context, id int) error {
	if err := s.types.Delete(ctx, id); err != nil {
		s.setErr(err, "could not delete room type")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.typeList[:0]
	for _, rt := range s.typeList {
		if rt.ID != id {
			kept = append(kept, rt)
		}
	}
	s.typeList = kept
	return nil
}

// CreateRate adds a rate to the backend and the cache.
func (s *Rooms) CreateRate(ctx context.Context, in models.RoomRateInput) (*models.RoomRate, error) {
	rate, err := s.rates.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create rate")
		return nil, err
	}
	s.mu.Lock()
	s.rateList = append(s.rateList, *rate)
	s.mu.Unlock()
	return rate, nil
}

// UpdateRate patches a rate and replaces it in the cache.
func (s *Rooms) UpdateRate(ctx context.Context, id int, in models.RoomRateInput) (*models.RoomRate, error) {
	rate, err := s.rates.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update rate")
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rateList {
		if s.rateList[i].ID == rate.ID {
			s.rateList[i] = *rate
			break
		}
	}
	return rate, nil
}

// DeleteRate removes a rate from the backend and the cache.
func (s *Rooms) DeleteRate(ctx context.Context, id int) error {
	if err := s.rates.Delete(ctx, id); err != nil {
		s.setErr(err, "could not delete rate")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rateList[:0]
	for _, r := range s.rateList {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.rateList = kept
	return nil
}

func (s *Rooms) replaceRoom(room models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.roomList {
		if s.roomList[i].ID == room.ID {
			s.roomList[i] = room
			break
		}
	}
	if s.selectedRoom != nil && s.selectedRoom.ID == room.ID {
		s.selectedRoom = &room
	}
}

func (s *Rooms) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
