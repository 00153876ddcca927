// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

import "github.com/goccy/go-json"

// Realtime event tags pushed over the dashboard WebSocket feed. Tags outside
// this set are ignored by the client, not treated as errors.
const (
	EventConnected         = "connected"
	EventRoomStatusChanged = "room_status_changed"
	EventOvertimeAlert     = "overtime_alert"
	EventCheckIn           = "check_in"
	EventCheckOut          = "check_out"
	EventNotification      = "notification"
	EventRoomTransfer      = "room_transfer"
	EventPong              = "pong"

	EventHousekeepingTaskCreated   = "housekeeping_task_created"
	EventHousekeepingTaskUpdated   = "housekeeping_task_updated"
	EventHousekeepingTaskStarted   = "housekeeping_task_started"
	EventHousekeepingTaskCompleted = "housekeeping_task_completed"

	EventMaintenanceTaskCreated   = "maintenance_task_created"
	EventMaintenanceTaskUpdated   = "maintenance_task_updated"
	EventMaintenanceTaskStarted   = "maintenance_task_started"
	EventMaintenanceTaskCompleted = "maintenance_task_completed"
	EventMaintenanceTaskCancelled = "maintenance_task_cancelled"
)

// Envelope is the discriminated wire message of the realtime feed.
type Envelope struct {
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// PingMessage is the outbound heartbeat. The server answers with a pong
// envelope, which the session consumes without dispatching.
type PingMessage struct {
	Type string `json:"type"`
}

// ConnectedEvent is the payload of the first envelope after a connect. The
// client id it carries is reused on reconnects for server-side reattachment.
type ConnectedEvent struct {
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
}

// RoomStatusChangedEvent announces a room status transition.
type RoomStatusChangedEvent struct {
	RoomID    int             `json:"room_id"`
	OldStatus string          `json:"old_status"`
	NewStatus string          `json:"new_status"`
	RoomData  json.RawMessage `json:"room_data,omitempty"`
}

// CheckInEvent announces a completed check-in.
type CheckInEvent struct {
	RoomID       int      `json:"room_id"`
	RoomNumber   string   `json:"room_number"`
	CustomerName string   `json:"customer_name"`
	StayType     StayType `json:"stay_type"`
}

// CheckOutEvent announces a completed check-out.
type CheckOutEvent struct {
	RoomID     int    `json:"room_id"`
	RoomNumber string `json:"room_number"`
}

// RoomTransferEvent announces an active stay moved between rooms.
type RoomTransferEvent struct {
	CheckInID  int    `json:"check_in_id"`
	FromRoomID int    `json:"from_room_id"`
	ToRoomID   int    `json:"to_room_id"`
	RoomNumber string `json:"room_number,omitempty"`
}

// NotificationEvent is a pushed staff notification. It carries no server id;
// the store inserts it as a pending record until an authoritative fetch.
type NotificationEvent struct {
	NotificationType string `json:"notification_type"`
	TargetRole       string `json:"target_role"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	RoomID           *int   `json:"room_id,omitempty"`
}

// TaskLifecycleEvent is the shared payload of housekeeping and maintenance
// task lifecycle events.
type TaskLifecycleEvent struct {
	TaskID     int    `json:"task_id"`
	RoomID     int    `json:"room_id,omitempty"`
	RoomNumber string `json:"room_number,omitempty"`
	Status     string `json:"status,omitempty"`
}
