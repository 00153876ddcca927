// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"sync"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/realtime"
)

// Maintenance caches the repair task board and its workload summary.
type Maintenance struct {
	api *api.Maintenance

	mu      sync.RWMutex
	filter  models.TaskFilter
	skip    int
	tasks   []models.MaintenanceTask
	total   int
	stats   *models.MaintenanceStats
	loading bool
	err     string
}

func NewMaintenance(a *api.Maintenance) *Maintenance {
	return &Maintenance{api: a}
}

// SetFilter replaces the board filter and resets pagination.
func (s *Maintenance) SetFilter(f models.TaskFilter) {
	s.mu.Lock()
	s.filter = f
	s.skip = 0
	s.mu.Unlock()
}

// SetPage moves the board to the given zero-based page.
func (s *Maintenance) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.mu.Lock()
	s.skip = page * taskPageSize
	s.mu.Unlock()
}

// Fetch loads the current board page.
func (s *Maintenance) Fetch(ctx context.Context) error {
	s.mu.Lock()
	filter := s.filter
	skip := s.skip
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	list, err := s.api.Tasks(ctx, filter, skip, taskPageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load maintenance tasks")
		return err
	}
	s.tasks = list.Tasks
	s.total = list.Total
	return nil
}

// FetchStats loads the workload summary.
func (s *Maintenance) FetchStats(ctx context.Context) error {
	stats, err := s.api.Stats(ctx)
	if err != nil {
		s.setErr(err, "could not load maintenance stats")
		return err
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// Create reports a fault and prepends the task to the board.
func (s *Maintenance) Create(ctx context.Context, in models.MaintenanceTaskInput) (*models.MaintenanceTask, error) {
	task, err := s.api.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create task")
		return nil, err
	}
	s.prepend(task)
	return task, nil
}

// CreateWithPhotos reports a fault with photo evidence attached.
func (s *Maintenance) CreateWithPhotos(ctx context.Context, in models.MaintenanceTaskInput, photos []api.Photo) (*models.MaintenanceTask, error) {
	task, err := s.api.CreateWithPhotos(ctx, in, photos)
	if err != nil {
		s.setErr(err, "could not create task")
		return nil, err
	}
	s.prepend(task)
	return task, nil
}

// Update edits a task and patches the cached copy.
func (s *Maintenance) Update(ctx context.Context, id int, in models.MaintenanceTaskUpdate) (*models.MaintenanceTask, error) {
	task, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update task")
		return nil, err
	}
	s.upsert(task)
	return task, nil
}

// Start transitions a task to in progress.
func (s *Maintenance) Start(ctx context.Context, id int, in models.TaskTransitionInput) (*models.MaintenanceTask, error) {
	task, err := s.api.Start(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not start task")
		return nil, err
	}
	s.upsert(task)
	return task, nil
}

// Complete transitions a task to completed.
func (s *Maintenance) Complete(ctx context.Context, id int, in models.TaskTransitionInput) (*models.MaintenanceTask, error) {
	task, err := s.api.Complete(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not complete task")
		return nil, err
	}
	s.upsert(task)
	return task, nil
}

// Cancel voids a task.
func (s *Maintenance) Cancel(ctx context.Context, id int) (*models.MaintenanceTask, error) {
	task, err := s.api.Cancel(ctx, id)
	if err != nil {
		s.setErr(err, "could not cancel task")
		return nil, err
	}
	s.upsert(task)
	return task, nil
}

// Tasks returns the current board page.
func (s *Maintenance) Tasks() []models.MaintenanceTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MaintenanceTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats returns the last fetched workload summary.
func (s *Maintenance) Stats() *models.MaintenanceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

// Total returns the board size reported by the server.
func (s *Maintenance) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Err returns the last error message.
func (s *Maintenance) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a board fetch is in flight.
func (s *Maintenance) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Bind keeps the board live, mirroring the housekeeping store: created
// tasks refetch the page, lifecycle events refetch the single task.
func (s *Maintenance) Bind(ctx context.Context, sess *realtime.Session) func() {
	refetchBoard := func(event string) {
		metrics.StoreRefetches.WithLabelValues("maintenance", event).Inc()
		if err := s.Fetch(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Maintenance board refetch failed")
		}
		if err := s.FetchStats(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Maintenance stats refetch failed")
		}
	}
	refetchTask := func(event string, taskID int) {
		metrics.StoreRefetches.WithLabelValues("maintenance", event).Inc()
		task, err := s.api.Task(ctx, taskID)
		if err != nil {
			logging.Warn().Err(err).Int("task_id", taskID).Msg("Maintenance task refetch failed")
			return
		}
		s.upsert(task)
		if err := s.FetchStats(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Maintenance stats refetch failed")
		}
	}

	onLifecycle := func(env models.Envelope) {
		var ev models.TaskLifecycleEvent
		if err := unmarshalEvent(env, &ev); err != nil {
			return
		}
		refetchTask(env.Event, ev.TaskID)
	}

	unsubs := []func(){
		sess.On(models.EventMaintenanceTaskCreated, func(env models.Envelope) {
			refetchBoard(env.Event)
		}),
		sess.On(models.EventMaintenanceTaskUpdated, onLifecycle),
		sess.On(models.EventMaintenanceTaskStarted, onLifecycle),
		sess.On(models.EventMaintenanceTaskCompleted, onLifecycle),
		sess.On(models.EventMaintenanceTaskCancelled, onLifecycle),
	}
	return unbindAll(unsubs)
}

func (s *Maintenance) prepend(task *models.MaintenanceTask) {
	s.mu.Lock()
	s.tasks = append([]models.MaintenanceTask{*task}, s.tasks...)
	s.total++
	s.mu.Unlock()
}

func (s *Maintenance) upsert(task *models.MaintenanceTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = *task
			return
		}
	}
	s.tasks = append([]models.MaintenanceTask{*task}, s.tasks...)
}

func (s *Maintenance) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
