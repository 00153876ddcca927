// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// RoomStatus is the server's fixed room status vocabulary.
type RoomStatus string

const (
	RoomAvailable    RoomStatus = "AVAILABLE"
	RoomOccupied     RoomStatus = "OCCUPIED"
	RoomCleaning     RoomStatus = "CLEANING"
	RoomReserved     RoomStatus = "RESERVED"
	RoomOutOfService RoomStatus = "OUT_OF_SERVICE"
)

// StayType distinguishes overnight stays from hourly (temporary) stays.
type StayType string

const (
	StayOvernight StayType = "OVERNIGHT"
	StayTemporary StayType = "TEMPORARY"
)

// RoomType describes a bookable category of rooms.
type RoomType struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	MaxGuests   int      `json:"max_guests"`
	BedType     string   `json:"bed_type,omitempty"`
	RoomSizeSqm float64  `json:"room_size_sqm,omitempty"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// RoomTypeWithStats extends RoomType with occupancy counters.
type RoomTypeWithStats struct {
	RoomType
	TotalRooms     int `json:"total_rooms"`
	AvailableRooms int `json:"available_rooms"`
}

// Room is a physical room record as the backend returns it.
type Room struct {
	ID         int        `json:"id"`
	RoomNumber string     `json:"room_number"`
	RoomTypeID int        `json:"room_type_id"`
	RoomType   *RoomType  `json:"room_type,omitempty"`
	Floor      int        `json:"floor"`
	Status     RoomStatus `json:"status"`
	QRCode     string     `json:"qr_code,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

// RoomRate is a price for a room type and stay type over an effective window.
type RoomRate struct {
	ID            int       `json:"id"`
	RoomTypeID    int       `json:"room_type_id"`
	RoomType      *RoomType `json:"room_type,omitempty"`
	StayType      StayType  `json:"stay_type"`
	Rate          float64   `json:"rate"`
	EffectiveFrom string    `json:"effective_from"`
	EffectiveTo   string    `json:"effective_to,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// RoomRateMatrixRow is the per-room-type row of the rate matrix view.
type RoomRateMatrixRow struct {
	RoomTypeID      int      `json:"room_type_id"`
	RoomTypeName    string   `json:"room_type_name"`
	OvernightRate   *float64 `json:"overnight_rate,omitempty"`
	TemporaryRate   *float64 `json:"temporary_rate,omitempty"`
	OvernightRateID *int     `json:"overnight_rate_id,omitempty"`
	TemporaryRateID *int     `json:"temporary_rate_id,omitempty"`
}

// RoomTypeInput is the create/update payload for room types.
type RoomTypeInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	MaxGuests   int      `json:"max_guests"`
	BedType     string   `json:"bed_type,omitempty"`
	RoomSizeSqm float64  `json:"room_size_sqm,omitempty"`
	IsActive    bool     `json:"is_active"`
}

// RoomInput is the create/update payload for rooms.
type RoomInput struct {
	RoomNumber string `json:"room_number"`
	RoomTypeID int    `json:"room_type_id"`
	Floor      int    `json:"floor"`
	Notes      string `json:"notes,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// RoomRateInput is the create/update payload for room rates.
type RoomRateInput struct {
	RoomTypeID    int      `json:"room_type_id"`
	StayType      StayType `json:"stay_type"`
	Rate          float64  `json:"rate"`
	EffectiveFrom string   `json:"effective_from"`
	EffectiveTo   string   `json:"effective_to,omitempty"`
	IsActive      bool     `json:"is_active"`
}

// RoomListFilter narrows room list queries. Zero values are omitted.
type RoomListFilter struct {
	Skip       int
	Limit      int
	Floor      *int
	Status     RoomStatus
	RoomTypeID int
	IsActive   *bool
}
