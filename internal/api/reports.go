// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"net/url"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Reports calls the analytics endpoints.
type Reports struct {
	t *transport.Client
}

func NewReports(t *transport.Client) *Reports {
	return &Reports{t: t}
}

// Revenue returns the revenue report for a date range. groupBy is "day" or
// "month"; empty uses the backend default.
func (r *Reports) Revenue(ctx context.Context, startDate, endDate, groupBy string) (*models.RevenueReport, error) {
	q := rangeQuery(startDate, endDate)
	setStr(q, "group_by", groupBy)

	var out models.RevenueReport
	if err := r.t.Get(ctx, "/reports/revenue", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Occupancy returns the occupancy report for a date range.
func (r *Reports) Occupancy(ctx context.Context, startDate, endDate string) (*models.OccupancyReport, error) {
	var out models.OccupancyReport
	if err := r.t.Get(ctx, "/reports/occupancy", rangeQuery(startDate, endDate), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bookings returns the booking conversion report for a date range.
func (r *Reports) Bookings(ctx context.Context, startDate, endDate string) (*models.BookingReport, error) {
	var out models.BookingReport
	if err := r.t.Get(ctx, "/reports/bookings", rangeQuery(startDate, endDate), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Customers returns the top-customer report.
func (r *Reports) Customers(ctx context.Context, limit int) (*models.CustomerReport, error) {
	q := url.Values{}
	setInt(q, "limit", limit)

	var out models.CustomerReport
	if err := r.t.Get(ctx, "/reports/customers", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary returns the cross-domain overview. Dates are optional; the backend
// defaults to the current period.
func (r *Reports) Summary(ctx context.Context, startDate, endDate string) (*models.SummaryReport, error) {
	var out models.SummaryReport
	if err := r.t.Get(ctx, "/reports/summary", rangeQuery(startDate, endDate), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func rangeQuery(startDate, endDate string) url.Values {
	q := url.Values{}
	setStr(q, "start_date", startDate)
	setStr(q, "end_date", endDate)
	return q
}
