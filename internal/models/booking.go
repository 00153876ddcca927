// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// BookingStatus is the server's fixed booking lifecycle vocabulary.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is an advance reservation for a room.
type Booking struct {
	ID             int           `json:"id"`
	CustomerID     int           `json:"customer_id"`
	RoomID         int           `json:"room_id"`
	CheckInDate    string        `json:"check_in_date"`
	CheckOutDate   string        `json:"check_out_date"`
	NumberOfNights int           `json:"number_of_nights"`
	TotalAmount    float64       `json:"total_amount"`
	DepositAmount  float64       `json:"deposit_amount"`
	Status         BookingStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	CreatedBy      int           `json:"created_by"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	CancelledAt    string        `json:"cancelled_at,omitempty"`

	// Denormalized display fields the backend joins in.
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	RoomNumber    string `json:"room_number,omitempty"`
	RoomTypeName  string `json:"room_type_name,omitempty"`
	CreatorName   string `json:"creator_name,omitempty"`
}

// BookingInput is the create payload for bookings.
type BookingInput struct {
	CustomerID    int     `json:"customer_id"`
	RoomID        int     `json:"room_id"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	TotalAmount   float64 `json:"total_amount"`
	DepositAmount float64 `json:"deposit_amount,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// BookingUpdate is the partial update payload for bookings.
type BookingUpdate struct {
	CheckInDate   *string  `json:"check_in_date,omitempty"`
	CheckOutDate  *string  `json:"check_out_date,omitempty"`
	TotalAmount   *float64 `json:"total_amount,omitempty"`
	DepositAmount *float64 `json:"deposit_amount,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// BookingList is the paginated list envelope for bookings.
type BookingList struct {
	Data  []Booking `json:"data"`
	Total int       `json:"total"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	Status     BookingStatus
	RoomID     int
	CustomerID int
	StartDate  string
	EndDate    string
}

// BookingCalendarEvent is a booking projected onto the calendar view.
type BookingCalendarEvent struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	Color         string  `json:"color"`
	Status        string  `json:"status"`
	RoomNumber    string  `json:"room_number"`
	CustomerName  string  `json:"customer_name"`
	DepositAmount float64 `json:"deposit_amount"`
	TotalAmount   float64 `json:"total_amount"`
}

// PublicHoliday is a national holiday shown on the booking calendar.
type PublicHoliday struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
}

// AvailabilityCheck asks whether a room is free for a date range.
type AvailabilityCheck struct {
	RoomID           int    `json:"room_id"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	ExcludeBookingID int    `json:"exclude_booking_id,omitempty"`
}

// AvailabilityResult is the backend's answer to an AvailabilityCheck.
type AvailabilityResult struct {
	Available           bool      `json:"available"`
	ConflictingBookings []Booking `json:"conflicting_bookings"`
}

// BookingStats summarizes bookings by status with revenue totals.
type BookingStats struct {
	TotalBookings int     `json:"total_bookings"`
	Pending       int     `json:"pending"`
	Confirmed     int     `json:"confirmed"`
	CheckedIn     int     `json:"checked_in"`
	Completed     int     `json:"completed"`
	Cancelled     int     `json:"cancelled"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalDeposits float64 `json:"total_deposits"`
}
