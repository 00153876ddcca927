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

const taskPageSize = 50

// Housekeeping caches the cleaning task board and its count summary.
type Housekeeping struct {
	api *api.Housekeeping

	mu      sync.RWMutex
	filter  models.TaskFilter
	skip    int
	tasks   []models.HousekeepingTask
	total   int
	stats   *models.HousekeepingStats
	loading bool
	err     string
}

func NewHousekeeping(a *api.Housekeeping) *Housekeeping {
	return &Housekeeping{api: a}
}

// SetFilter replaces the board filter and resets pagination. Fetch picks
// it up on the next call.
func (s *Housekeeping) SetFilter(f models.TaskFilter) {
	s.mu.Lock()
	s.filter = f
	s.skip = 0
	s.mu.Unlock()
}

// SetPage moves the board to the given zero-based page.
func (s *Housekeeping) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.mu.Lock()
	s.skip = page * taskPageSize
	s.mu.Unlock()
}

// Fetch loads the current board page.
func (s *Housekeeping) Fetch(ctx context.Context) error {
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
		s.err = errMessage(err, "could not load housekeeping tasks")
		return err
	}
	s.tasks = list.Data
	s.total = list.Total
	return nil
}

// FetchStats loads the task count summary.
func (s *Housekeeping) FetchStats(ctx context.Context) error {
	stats, err := s.api.Stats(ctx)
	if err != nil {
		s.setErr(err, "could not load housekeeping stats")
		return err
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// Create adds a task and prepends it to the board.
func (s *Housekeeping) Create(ctx context.Context, in models.HousekeepingTaskInput) (*models.HousekeepingTask, error) {
	task, err := s.api.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create task")
		return nil, err
	}
	s.mu.Lock()
	s.tasks = append([]models.HousekeepingTask{*task}, s.tasks...)
	s.total++
	s.mu.Unlock()
	return task, nil
}

// Update edits a task and patches the cached copy.
func (s *Housekeeping) Update(ctx context.Context, id int, in models.HousekeepingTaskUpdate) (*models.HousekeepingTask, error) {
	task, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update task")
		return nil, err
	}
	s.upsert(task)
	return task, nil
}

// Start transitions a task to in progress.
func (s *Housekeeping) Start(ctx context.Context, id int, in models.TaskTransitionInput) (*models.HousekeepingTask, error) {
	task, err := s.api.Start(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not start task")
		return nil, err
	}
	s.upsert(task)
	return task, nil
}

// Complete transitions a task to completed.
func (s *Housekeeping) Complete(ctx context.Context, id int, in models.TaskTransitionInput) (*models.HousekeepingTask, error) {
	task, err := s.api.Complete(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not complete task")
		return nil, err
	}
	s.upsert(task)
	return task, nil
}

// Tasks returns the current board page.
func (s *Housekeeping) Tasks() []models.HousekeepingTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HousekeepingTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats returns the last fetched count summary.
func (s *Housekeeping) Stats() *models.HousekeepingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

// Total returns the board size reported by the server.
func (s *Housekeeping) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Err returns the last error message.
func (s *Housekeeping) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a board fetch is in flight.
func (s *Housekeeping) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Bind keeps the board live. A created task refetches the whole page so
// filter and ordering stay server-authoritative; lifecycle events on a
// known task refetch just that task.
func (s *Housekeeping) Bind(ctx context.Context, sess *realtime.Session) func() {
	refetchBoard := func(event string) {
		metrics.StoreRefetches.WithLabelValues("housekeeping", event).Inc()
		if err := s.Fetch(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Housekeeping board refetch failed")
		}
		if err := s.FetchStats(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Housekeeping stats refetch failed")
		}
	}
	refetchTask := func(event string, taskID int) {
		metrics.StoreRefetches.WithLabelValues("housekeeping", event).Inc()
		task, err := s.api.Task(ctx, taskID)
		if err != nil {
			logging.Warn().Err(err).Int("task_id", taskID).Msg("Housekeeping task refetch failed")
			return
		}
		s.upsert(task)
		if err := s.FetchStats(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Housekeeping stats refetch failed")
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
		sess.On(models.EventHousekeepingTaskCreated, func(env models.Envelope) {
			refetchBoard(env.Event)
		}),
		sess.On(models.EventHousekeepingTaskUpdated, onLifecycle),
		sess.On(models.EventHousekeepingTaskStarted, onLifecycle),
		sess.On(models.EventHousekeepingTaskCompleted, onLifecycle),
	}
	return unbindAll(unsubs)
}

func (s *Housekeeping) upsert(task *models.HousekeepingTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = *task
			return
		}
	}
	s.tasks = append([]models.HousekeepingTask{*task}, s.tasks...)
}

func (s *Housekeeping) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
