// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Notifications calls the staff notification endpoints.
type Notifications struct {
	t *transport.Client
}

func NewNotifications(t *transport.Client) *Notifications {
	return &Notifications{t: t}
}

// List returns a page of notifications for the current user's role.
func (n *Notifications) List(ctx context.Context, limit, offset int, unreadOnly bool) (*models.NotificationList, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	if unreadOnly {
		q.Set("unread_only", strconv.FormatBool(true))
	}

	var out models.NotificationList
	if err := n.t.Get(ctx, "/notifications", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnreadCount returns the unread total for the current user's role.
func (n *Notifications) UnreadCount(ctx context.Context) (int, error) {
	var out models.UnreadCount
	if err := n.t.Get(ctx, "/notifications/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// MarkRead marks one notification read.
func (n *Notifications) MarkRead(ctx context.Context, id int) (*models.Notification, error) {
	var out models.Notification
	if err := n.t.Patch(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkAllRead marks every unread notification for the current role.
func (n *Notifications) MarkAllRead(ctx context.Context) (*models.MarkAllReadResult, error) {
	var out models.MarkAllReadResult
	if err := n.t.Post(ctx, "/notifications/mark-all-read", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a notification (admin only).
func (n *Notifications) Create(ctx context.Context, in models.NotificationInput) (*models.Notification, error) {
	var out models.Notification
	if err := n.t.Post(ctx, "/notifications", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
