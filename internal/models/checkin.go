// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// PaymentMethod is the server's fixed payment vocabulary.
type PaymentMethod string

const (
	PayCash       PaymentMethod = "cash"
	PayTransfer   PaymentMethod = "transfer"
	PayCreditCard PaymentMethod = "credit_card"
)

// CheckInStatus tracks whether a stay is still active.
type CheckInStatus string

const (
	CheckedIn  CheckInStatus = "checked_in"
	CheckedOut CheckInStatus = "checked_out"
)

// CheckIn is a guest stay record, from arrival through settlement.
// Amounts are computed server-side; the client only displays them.
type CheckIn struct {
	ID                    int           `json:"id"`
	RoomID                int           `json:"room_id"`
	CustomerID            int           `json:"customer_id"`
	BookingID             *int          `json:"booking_id,omitempty"`
	StayType              StayType      `json:"stay_type"`
	NumberOfNights        int           `json:"number_of_nights,omitempty"`
	NumberOfGuests        int           `json:"number_of_guests"`
	CheckInTime           string        `json:"check_in_time"`
	ExpectedCheckOutTime  string        `json:"expected_check_out_time"`
	ActualCheckOutTime    string        `json:"actual_check_out_time,omitempty"`
	IsOvertime            bool          `json:"is_overtime"`
	OvertimeMinutes       int           `json:"overtime_minutes,omitempty"`
	OvertimeCharge        float64       `json:"overtime_charge"`
	BaseAmount            float64       `json:"base_amount"`
	ExtraCharges          float64       `json:"extra_charges"`
	DiscountAmount        float64       `json:"discount_amount"`
	DiscountReason        string        `json:"discount_reason,omitempty"`
	TotalAmount           float64       `json:"total_amount"`
	PaymentMethod         PaymentMethod `json:"payment_method,omitempty"`
	PaymentSlipURL        string        `json:"payment_slip_url,omitempty"`
	Status                CheckInStatus `json:"status"`
	Notes                 string        `json:"notes,omitempty"`
	CreatedBy             int           `json:"created_by"`
	CheckedOutBy          *int          `json:"checked_out_by,omitempty"`
	CreatedAt             string        `json:"created_at"`
	UpdatedAt             string        `json:"updated_at"`
}

// CheckInInput is the payload for creating a check-in. The backend creates or
// matches the customer from the embedded CustomerData in the same call.
type CheckInInput struct {
	RoomID         int           `json:"room_id"`
	StayType       StayType      `json:"stay_type"`
	NumberOfNights int           `json:"number_of_nights,omitempty"`
	NumberOfGuests int           `json:"number_of_guests,omitempty"`
	CheckInTime    string        `json:"check_in_time,omitempty"`
	BookingID      int           `json:"booking_id,omitempty"`
	DepositAmount  float64       `json:"deposit_amount,omitempty"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	Notes          string        `json:"notes,omitempty"`

	CustomerData CustomerInput `json:"customer_data"`
}

// CheckOutInput is the payload for settling a stay.
type CheckOutInput struct {
	ActualCheckOutTime string        `json:"actual_check_out_time,omitempty"`
	ExtraCharges       float64       `json:"extra_charges,omitempty"`
	DiscountAmount     float64       `json:"discount_amount,omitempty"`
	DiscountReason     string        `json:"discount_reason,omitempty"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	PaymentNotes       string        `json:"payment_notes,omitempty"`
}

// CheckOutSummary is the backend's settlement preview before checkout.
type CheckOutSummary struct {
	CheckInID            int      `json:"check_in_id"`
	RoomNumber           string   `json:"room_number"`
	CustomerName         string   `json:"customer_name"`
	StayType             StayType `json:"stay_type"`
	CheckInTime          string   `json:"check_in_time"`
	ExpectedCheckOutTime string   `json:"expected_check_out_time"`
	ActualCheckOutTime   string   `json:"actual_check_out_time"`
	BaseAmount           float64  `json:"base_amount"`
	IsOvertime           bool     `json:"is_overtime"`
	OvertimeMinutes      int      `json:"overtime_minutes,omitempty"`
	OvertimeCharge       float64  `json:"overtime_charge"`
	ExtraCharges         float64  `json:"extra_charges"`
	DiscountAmount       float64  `json:"discount_amount"`
	TotalAmount          float64  `json:"total_amount"`
}

// RoomTransferInput moves an active check-in to another room.
type RoomTransferInput struct {
	NewRoomID int    `json:"new_room_id"`
	Reason    string `json:"reason,omitempty"`
}

// RoomTransferResult is the backend's confirmation of a room transfer.
type RoomTransferResult struct {
	CheckInID     int    `json:"check_in_id"`
	OldRoomID     int    `json:"old_room_id"`
	OldRoomNumber string `json:"old_room_number"`
	NewRoomID     int    `json:"new_room_id"`
	NewRoomNumber string `json:"new_room_number"`
	TransferredBy int    `json:"transferred_by"`
	TransferredAt string `json:"transferred_at"`
	Reason        string `json:"reason,omitempty"`
	Message       string `json:"message"`
}
