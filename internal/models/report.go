// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// RevenueByPeriod is one bucket of a revenue report series.
type RevenueByPeriod struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// RevenueReport summarizes settled revenue over a date range.
type RevenueReport struct {
	TotalRevenue       float64            `json:"total_revenue"`
	TotalTransactions  int                `json:"total_transactions"`
	AverageTransaction float64            `json:"average_transaction"`
	ByPaymentMethod    map[string]float64 `json:"by_payment_method"`
	ByStayType         map[string]float64 `json:"by_stay_type"`
	ByPeriod           []RevenueByPeriod  `json:"by_period"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
}

// OccupancyByPeriod is one bucket of an occupancy report series.
type OccupancyByPeriod struct {
	Period        string  `json:"period"`
	OccupancyRate float64 `json:"occupancy_rate"`
	OccupiedRooms int     `json:"occupied_rooms"`
	TotalRooms    int     `json:"total_rooms"`
}

// RoomStatusDistribution counts rooms per status for reporting.
type RoomStatusDistribution struct {
	Available    int `json:"available"`
	Occupied     int `json:"occupied"`
	Cleaning     int `json:"cleaning"`
	Reserved     int `json:"reserved"`
	OutOfService int `json:"out_of_service"`
}

// OccupancyReport summarizes room occupancy over a date range.
type OccupancyReport struct {
	OccupancyRate          float64                `json:"occupancy_rate"`
	TotalRooms             int                    `json:"total_rooms"`
	OccupiedRooms          int                    `json:"occupied_rooms"`
	AvailableRooms         int                    `json:"available_rooms"`
	RoomStatusDistribution RoomStatusDistribution `json:"room_status_distribution"`
	ByPeriod               []OccupancyByPeriod    `json:"by_period"`
	StartDate              string                 `json:"start_date"`
	EndDate                string                 `json:"end_date"`
}

// BookingByPeriod is one bucket of a booking report series.
type BookingByPeriod struct {
	Period        string `json:"period"`
	TotalBookings int    `json:"total_bookings"`
	Confirmed     int    `json:"confirmed"`
	Cancelled     int    `json:"cancelled"`
	CheckedIn     int    `json:"checked_in"`
}

// BookingReport summarizes booking funnel metrics over a date range.
type BookingReport struct {
	TotalBookings     int               `json:"total_bookings"`
	ConfirmedBookings int               `json:"confirmed_bookings"`
	CancelledBookings int               `json:"cancelled_bookings"`
	CheckedInBookings int               `json:"checked_in_bookings"`
	CancellationRate  float64           `json:"cancellation_rate"`
	ConversionRate    float64           `json:"conversion_rate"`
	TotalDeposit      float64           `json:"total_deposit"`
	ByPeriod          []BookingByPeriod `json:"by_period"`
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
}

// TopCustomer is one row of the top-customers report.
type TopCustomer struct {
	CustomerID    int     `json:"customer_id"`
	FullName      string  `json:"full_name"`
	PhoneNumber   string  `json:"phone_number"`
	TotalSpending float64 `json:"total_spending"`
	VisitCount    int     `json:"visit_count"`
}

// CustomerReport summarizes customer activity over a date range.
type CustomerReport struct {
	TotalCustomers     int           `json:"total_customers"`
	NewCustomers       int           `json:"new_customers"`
	ReturningCustomers int           `json:"returning_customers"`
	TopCustomers       []TopCustomer `json:"top_customers"`
	StartDate          string        `json:"start_date"`
	EndDate            string        `json:"end_date"`
}

// QuickStat is one headline figure on the summary report. Trend is "up",
// "down" or "neutral"; nil when there is no previous period to compare.
type QuickStat struct {
	Label  string   `json:"label"`
	Value  string   `json:"value"`
	Change *float64 `json:"change"`
	Trend  *string  `json:"trend"`
}

// SummaryReport is the cross-domain overview with period-over-period deltas.
type SummaryReport struct {
	TotalRevenue        float64     `json:"total_revenue"`
	RevenueVsPrevious   *float64    `json:"revenue_vs_previous"`
	OccupancyRate       float64     `json:"occupancy_rate"`
	OccupancyVsPrevious *float64    `json:"occupancy_vs_previous"`
	TotalCheckins       int         `json:"total_checkins"`
	TotalCheckouts      int         `json:"total_checkouts"`
	TotalBookings       int         `json:"total_bookings"`
	BookingsVsPrevious  *float64    `json:"bookings_vs_previous"`
	TotalCustomers      int         `json:"total_customers"`
	NewCustomers        int         `json:"new_customers"`
	QuickStats          []QuickStat `json:"quick_stats"`
	StartDate           string      `json:"start_date"`
	EndDate             string      `json:"end_date"`
}
