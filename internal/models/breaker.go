// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// BreakerState is the reported state of a room's power breaker.
type BreakerState string

const (
	BreakerOn          BreakerState = "ON"
	BreakerOff         BreakerState = "OFF"
	BreakerUnavailable BreakerState = "UNAVAILABLE"
)

// BreakerAction is the action vocabulary of breaker activity logs.
type BreakerAction string

const (
	ActionTurnOn     BreakerAction = "TURN_ON"
	ActionTurnOff    BreakerAction = "TURN_OFF"
	ActionStatusSync BreakerAction = "STATUS_SYNC"
)

// TriggerType records what initiated a breaker action.
type TriggerType string

const (
	TriggerAuto   TriggerType = "AUTO"
	TriggerManual TriggerType = "MANUAL"
	TriggerSystem TriggerType = "SYSTEM"
)

// ActionStatus records the outcome of a breaker action.
type ActionStatus string

const (
	ActionSuccess ActionStatus = "SUCCESS"
	ActionFailed  ActionStatus = "FAILED"
	ActionTimeout ActionStatus = "TIMEOUT"
)

// Breaker is a Home Assistant switch entity mapped to a room.
type Breaker struct {
	ID                 int          `json:"id"`
	EntityID           string       `json:"entity_id"`
	FriendlyName       string       `json:"friendly_name"`
	RoomID             *int         `json:"room_id,omitempty"`
	RoomNumber         string       `json:"room_number,omitempty"`
	RoomStatus         string       `json:"room_status,omitempty"`
	AutoControlEnabled bool         `json:"auto_control_enabled"`
	IsAvailable        bool         `json:"is_available"`
	CurrentState       BreakerState `json:"current_state"`
	LastStateUpdate    string       `json:"last_state_update,omitempty"`
	ConsecutiveErrors  int          `json:"consecutive_errors"`
	LastErrorMessage   string       `json:"last_error_message,omitempty"`
	IsActive           bool         `json:"is_active"`
	CreatedAt          string       `json:"created_at"`
	UpdatedAt          string       `json:"updated_at"`
}

// BreakerInput is the create/update payload for breakers.
type BreakerInput struct {
	EntityID           string `json:"entity_id"`
	FriendlyName       string `json:"friendly_name"`
	RoomID             int    `json:"room_id,omitempty"`
	AutoControlEnabled bool   `json:"auto_control_enabled"`
}

// BreakerList is the breaker list envelope.
type BreakerList struct {
	Breakers []Breaker `json:"breakers"`
	Total    int       `json:"total"`
}

// BreakerControlResult is the backend's answer to a turn-on/turn-off command.
type BreakerControlResult struct {
	Success        bool         `json:"success"`
	Message        string       `json:"message"`
	BreakerID      int          `json:"breaker_id"`
	NewState       BreakerState `json:"new_state"`
	ResponseTimeMs *int         `json:"response_time_ms,omitempty"`
}

// BreakerSyncResult reports a state re-sync against Home Assistant.
type BreakerSyncResult struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	BreakerID    int          `json:"breaker_id"`
	CurrentState BreakerState `json:"current_state"`
	IsAvailable  bool         `json:"is_available"`
	SyncedAt     string       `json:"synced_at"`
}

// BreakerFleetSyncResult reports a sync-all run across every breaker.
type BreakerFleetSyncResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Total        int    `json:"total"`
	SuccessCount int    `json:"success_count"`
	FailedCount  int    `json:"failed_count"`
}

// BreakerActivityLog is one entry of the breaker audit trail.
type BreakerActivityLog struct {
	ID               int           `json:"id"`
	BreakerID        int           `json:"breaker_id"`
	EntityID         string        `json:"entity_id"`
	FriendlyName     string        `json:"friendly_name"`
	Action           BreakerAction `json:"action"`
	TriggerType      TriggerType   `json:"trigger_type"`
	TriggeredBy      *int          `json:"triggered_by,omitempty"`
	TriggeredByName  string        `json:"triggered_by_name,omitempty"`
	RoomStatusBefore string        `json:"room_status_before,omitempty"`
	RoomStatusAfter  string        `json:"room_status_after,omitempty"`
	Status           ActionStatus  `json:"status"`
	ErrorMessage     string        `json:"error_message,omitempty"`
	ResponseTimeMs   *int          `json:"response_time_ms,omitempty"`
	CreatedAt        string        `json:"created_at"`
}

// BreakerActivityLogList is the activity log envelope ({logs, total}).
type BreakerActivityLogList struct {
	Logs  []BreakerActivityLog `json:"logs"`
	Total int                  `json:"total"`
}

// BreakerLogFilter narrows activity log queries.
type BreakerLogFilter struct {
	BreakerID   int
	Action      BreakerAction
	TriggerType TriggerType
	Status      ActionStatus
	StartDate   string
	EndDate     string
	Limit       int
	Offset      int
}

// BreakerListFilter narrows breaker list queries.
type BreakerListFilter struct {
	RoomID             int
	AutoControlEnabled *bool
	CurrentState       BreakerState
	IsActive           *bool
}

// BreakerStatistics is the fleet-wide breaker summary.
type BreakerStatistics struct {
	TotalBreakers      int      `json:"total_breakers"`
	OnlineBreakers     int      `json:"online_breakers"`
	OfflineBreakers    int      `json:"offline_breakers"`
	BreakersOn         int      `json:"breakers_on"`
	BreakersOff        int      `json:"breakers_off"`
	AutoControlEnabled int      `json:"auto_control_enabled"`
	BreakersWithErrors int      `json:"breakers_with_errors"`
	TotalActionsToday  int      `json:"total_actions_today"`
	SuccessRateToday   float64  `json:"success_rate_today"`
	AvgResponseTimeMs  *float64 `json:"avg_response_time_ms,omitempty"`
}
