// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// DashboardRoomCard is the denormalized per-room card the dashboard renders:
// room, type, rate, active check-in, booking, and overtime data in one record.
type DashboardRoomCard struct {
	ID         int    `json:"id"`
	RoomNumber string `json:"room_number"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`

	RoomTypeID          int    `json:"room_type_id"`
	RoomTypeName        string `json:"room_type_name"`
	RoomTypeDescription string `json:"room_type_description,omitempty"`

	OvernightRate *float64 `json:"overnight_rate,omitempty"`
	TemporaryRate *float64 `json:"temporary_rate,omitempty"`

	CheckInID            *int     `json:"check_in_id,omitempty"`
	CustomerName         string   `json:"customer_name,omitempty"`
	CustomerPhone        string   `json:"customer_phone,omitempty"`
	StayType             StayType `json:"stay_type,omitempty"`
	CheckInTime          string   `json:"check_in_time,omitempty"`
	ExpectedCheckOutTime string   `json:"expected_check_out_time,omitempty"`

	BookingID            *int     `json:"booking_id,omitempty"`
	BookingCustomerName  string   `json:"booking_customer_name,omitempty"`
	BookingCustomerPhone string   `json:"booking_customer_phone,omitempty"`
	BookingCheckInDate   string   `json:"booking_check_in_date,omitempty"`
	BookingCheckOutDate  string   `json:"booking_check_out_date,omitempty"`
	BookingDepositAmount *float64 `json:"booking_deposit_amount,omitempty"`

	IsOvertime      bool `json:"is_overtime"`
	OvertimeMinutes *int `json:"overtime_minutes,omitempty"`

	QRCode   string `json:"qr_code,omitempty"`
	Notes    string `json:"notes,omitempty"`
	IsActive bool   `json:"is_active"`
}

// DashboardStats is the aggregate occupancy and revenue summary.
type DashboardStats struct {
	TotalRooms        int     `json:"total_rooms"`
	AvailableRooms    int     `json:"available_rooms"`
	OccupiedRooms     int     `json:"occupied_rooms"`
	CleaningRooms     int     `json:"cleaning_rooms"`
	ReservedRooms     int     `json:"reserved_rooms"`
	OutOfServiceRooms int     `json:"out_of_service_rooms"`
	OccupancyRate     float64 `json:"occupancy_rate"`

	TotalCheckInsToday int `json:"total_check_ins_today"`
	OvernightStays     int `json:"overnight_stays"`
	TemporaryStays     int `json:"temporary_stays"`

	// Decimal serialized as string by the backend; displayed verbatim.
	RevenueToday string `json:"revenue_today"`

	PendingMaintenanceCount int `json:"pending_maintenance_count,omitempty"`
}

// DashboardSnapshot is the combined dashboard payload.
type DashboardSnapshot struct {
	Rooms       []DashboardRoomCard `json:"rooms"`
	Stats       DashboardStats      `json:"stats"`
	LastUpdated string              `json:"last_updated"`
}

// OvertimeAlert is an active stay that has exceeded its expected checkout.
type OvertimeAlert struct {
	RoomID               int      `json:"room_id"`
	RoomNumber           string   `json:"room_number"`
	CheckInID            int      `json:"check_in_id"`
	CustomerName         string   `json:"customer_name"`
	StayType             StayType `json:"stay_type"`
	ExpectedCheckOutTime string   `json:"expected_check_out_time"`
	OvertimeMinutes      int      `json:"overtime_minutes"`
	CreatedAt            string   `json:"created_at"`
}

// OvertimeAlertList is the overtime alert list envelope.
type OvertimeAlertList struct {
	Data  []OvertimeAlert `json:"data"`
	Total int             `json:"total"`
}
