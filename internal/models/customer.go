// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// Customer is a guest record.
type Customer struct {
	ID            int     `json:"id"`
	FullName      string  `json:"full_name"`
	PhoneNumber   string  `json:"phone_number"`
	Email         string  `json:"email,omitempty"`
	IDCardNumber  string  `json:"id_card_number,omitempty"`
	Address       string  `json:"address,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	TotalVisits   int     `json:"total_visits"`
	TotalSpent    float64 `json:"total_spent"`
	LastVisitDate string  `json:"last_visit_date,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CustomerSearchResult is the compact shape returned by autocomplete search.
type CustomerSearchResult struct {
	ID            int    `json:"id"`
	FullName      string `json:"full_name"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email,omitempty"`
	TotalVisits   int    `json:"total_visits"`
	LastVisitDate string `json:"last_visit_date,omitempty"`
}

// CustomerInput is the create/update payload for customers.
type CustomerInput struct {
	FullName     string `json:"full_name"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email,omitempty"`
	IDCardNumber string `json:"id_card_number,omitempty"`
	Address      string `json:"address,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// CustomerList is the paginated list envelope for customers.
type CustomerList struct {
	Data  []Customer `json:"data"`
	Total int        `json:"total"`
	Skip  int        `json:"skip"`
	Limit int        `json:"limit"`
}

// CustomerStayHistory is one past stay of a customer.
type CustomerStayHistory struct {
	CheckInID    int      `json:"check_in_id"`
	RoomNumber   string   `json:"room_number"`
	StayType     StayType `json:"stay_type"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime string   `json:"check_out_time,omitempty"`
	TotalAmount  float64  `json:"total_amount"`
}
