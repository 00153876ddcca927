// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// TaskStatus is the shared lifecycle vocabulary of housekeeping and
// maintenance tasks.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// TaskPriority is the shared priority vocabulary of both task kinds.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

// MaintenanceCategory is the server's fixed maintenance category vocabulary.
type MaintenanceCategory string

const (
	CategoryPlumbing   MaintenanceCategory = "PLUMBING"
	CategoryElectrical MaintenanceCategory = "ELECTRICAL"
	CategoryHVAC       MaintenanceCategory = "HVAC"
	CategoryFurniture  MaintenanceCategory = "FURNITURE"
	CategoryAppliance  MaintenanceCategory = "APPLIANCE"
	CategoryBuilding   MaintenanceCategory = "BUILDING"
	CategoryOther      MaintenanceCategory = "OTHER"
)

// HousekeepingTask is a cleaning task with the backend's joined display fields.
type HousekeepingTask struct {
	ID              int          `json:"id"`
	RoomID          int          `json:"room_id"`
	CheckInID       *int         `json:"check_in_id,omitempty"`
	AssignedTo      *int         `json:"assigned_to,omitempty"`
	Status          TaskStatus   `json:"status"`
	Priority        TaskPriority `json:"priority"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       string       `json:"created_at"`
	StartedAt       string       `json:"started_at,omitempty"`
	CompletedAt     string       `json:"completed_at,omitempty"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	CreatedBy       int          `json:"created_by"`
	CompletedBy     *int         `json:"completed_by,omitempty"`
	UpdatedAt       string       `json:"updated_at"`

	RoomNumber       string `json:"room_number"`
	RoomTypeName     string `json:"room_type_name"`
	AssignedUserName string `json:"assigned_user_name,omitempty"`
	CreatorName      string `json:"creator_name"`
	CompleterName    string `json:"completer_name,omitempty"`
}

// HousekeepingTaskInput is the create payload for housekeeping tasks.
type HousekeepingTaskInput struct {
	RoomID      int          `json:"room_id"`
	CheckInID   int          `json:"check_in_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	AssignedTo  int          `json:"assigned_to,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// HousekeepingTaskUpdate is the partial update payload.
type HousekeepingTaskUpdate struct {
	Status     *TaskStatus   `json:"status,omitempty"`
	Priority   *TaskPriority `json:"priority,omitempty"`
	AssignedTo *int          `json:"assigned_to,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
}

// HousekeepingTaskList is the housekeeping list envelope ({data, total}).
type HousekeepingTaskList struct {
	Data  []HousekeepingTask `json:"data"`
	Total int                `json:"total"`
}

// HousekeepingStats summarizes housekeeping workload.
type HousekeepingStats struct {
	TotalTasks         int      `json:"total_tasks"`
	PendingTasks       int      `json:"pending_tasks"`
	InProgressTasks    int      `json:"in_progress_tasks"`
	CompletedToday     int      `json:"completed_today"`
	AvgDurationMinutes *float64 `json:"avg_duration_minutes,omitempty"`
}

// TaskFilter narrows task list queries for both task kinds.
type TaskFilter struct {
	Status     TaskStatus
	Priority   TaskPriority
	Category   MaintenanceCategory // maintenance only
	AssignedTo int
	RoomID     int
}

// TaskTransitionInput carries the optional timestamp/notes of a start or
// complete transition.
type TaskTransitionInput struct {
	StartedAt   string `json:"started_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// MaintenanceTask is a repair task with the backend's joined display fields.
type MaintenanceTask struct {
	ID              int                 `json:"id"`
	RoomID          int                 `json:"room_id"`
	Category        MaintenanceCategory `json:"category"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	Priority        TaskPriority        `json:"priority"`
	Status          TaskStatus          `json:"status"`
	AssignedTo      *int                `json:"assigned_to,omitempty"`
	CreatedBy       int                 `json:"created_by"`
	CompletedBy     *int                `json:"completed_by,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	PhotoURLs       []string            `json:"photo_urls,omitempty"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at,omitempty"`
	StartedAt       string              `json:"started_at,omitempty"`
	CompletedAt     string              `json:"completed_at,omitempty"`
	DurationMinutes *int                `json:"duration_minutes,omitempty"`

	RoomNumber       string `json:"room_number"`
	RoomTypeName     string `json:"room_type_name"`
	AssignedUserName string `json:"assigned_user_name,omitempty"`
	CreatorName      string `json:"creator_name"`
	CompleterName    string `json:"completer_name,omitempty"`
}

// MaintenanceTaskInput is the create payload for maintenance tasks. Photos
// ride along as a multipart upload when present.
type MaintenanceTaskInput struct {
	RoomID      int                 `json:"room_id"`
	Category    MaintenanceCategory `json:"category"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Priority    TaskPriority        `json:"priority"`
	AssignedTo  int                 `json:"assigned_to,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// MaintenanceTaskUpdate is the partial update payload.
type MaintenanceTaskUpdate struct {
	Category    *MaintenanceCategory `json:"category,omitempty"`
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Priority    *TaskPriority        `json:"priority,omitempty"`
	AssignedTo  *int                 `json:"assigned_to,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
}

// MaintenanceTaskList is the maintenance list envelope ({tasks, total}).
// The field name differs from housekeeping's; the backend is authoritative.
type MaintenanceTaskList struct {
	Tasks []MaintenanceTask `json:"tasks"`
	Total int               `json:"total"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
}

// MaintenanceStats summarizes maintenance workload with breakdowns.
type MaintenanceStats struct {
	TotalTasks         int            `json:"total_tasks"`
	PendingTasks       int            `json:"pending_tasks"`
	InProgressTasks    int            `json:"in_progress_tasks"`
	CompletedToday     int            `json:"completed_today"`
	AvgDurationMinutes *float64       `json:"avg_duration_minutes,omitempty"`
	ByCategory         map[string]int `json:"by_category"`
	ByPriority         map[string]int `json:"by_priority"`
}
