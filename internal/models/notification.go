// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// NotificationType is the server's fixed notification vocabulary.
type NotificationType string

const (
	NotifyRoomStatusChange   NotificationType = "room_status_change"
	NotifyOvertimeAlert      NotificationType = "overtime_alert"
	NotifyBookingReminder    NotificationType = "booking_reminder"
	NotifyHousekeepingTask   NotificationType = "housekeeping_task"
	NotifyMaintenanceRequest NotificationType = "maintenance_request"
	NotifyCheckIn            NotificationType = "check_in"
	NotifyCheckOut           NotificationType = "check_out"
	NotifySystemAlert        NotificationType = "system_alert"
)

// Role is the staff role vocabulary, used both for notification targeting and
// route guards. Comparison is case-insensitive everywhere.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleReception    Role = "RECEPTION"
	RoleHousekeeping Role = "HOUSEKEEPING"
	RoleMaintenance  Role = "MAINTENANCE"
)

// Notification is a staff-facing notification record.
type Notification struct {
	ID                int              `json:"id"`
	NotificationType  NotificationType `json:"notification_type"`
	TargetRole        Role             `json:"target_role"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	RoomID            *int             `json:"room_id,omitempty"`
	RelatedBookingID  *int             `json:"related_booking_id,omitempty"`
	RelatedCheckInID  *int             `json:"related_check_in_id,omitempty"`
	IsRead            bool             `json:"is_read"`
	ReadAt            string           `json:"read_at,omitempty"`
	TelegramSent      bool             `json:"telegram_sent"`
	TelegramMessageID string           `json:"telegram_message_id,omitempty"`
	CreatedAt         string           `json:"created_at"`
}

// NotificationInput is the create payload for notifications.
type NotificationInput struct {
	NotificationType NotificationType `json:"notification_type"`
	TargetRole       Role             `json:"target_role"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	RoomID           int              `json:"room_id,omitempty"`
	RelatedBookingID int              `json:"related_booking_id,omitempty"`
	RelatedCheckInID int              `json:"related_check_in_id,omitempty"`
}

// NotificationList is the notification list envelope.
type NotificationList struct {
	Data        []Notification `json:"data"`
	Total       int            `json:"total"`
	UnreadCount int            `json:"unread_count"`
}

// MarkAllReadResult reports how many notifications a mark-all-read touched.
type MarkAllReadResult struct {
	MarkedCount int    `json:"marked_count"`
	Message     string `json:"message"`
}

// UnreadCount is the unread-count envelope.
type UnreadCount struct {
	UnreadCount int `json:"unread_count"`
}
