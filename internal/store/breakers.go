// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"sync"
	"time"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/models"
)

// Breakers caches the smart breaker fleet, its activity log and the
// fleet-wide statistics.
type Breakers struct {
	api *api.Breakers

	mu       sync.RWMutex
	filter   models.BreakerListFilter
	breakers []models.Breaker
	total    int
	logs     []models.BreakerActivityLog
	logTotal int
	stats    *models.BreakerStatistics
	loading  bool
	err      string
}

func NewBreakers(a *api.Breakers) *Breakers {
	return &Breakers{api: a}
}

// SetFilter replaces the fleet filter. Fetch picks it up on the next call.
func (s *Breakers) SetFilter(f models.BreakerListFilter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

// Fetch loads the fleet matching the current filter.
func (s *Breakers) Fetch(ctx context.Context) error {
	return s.fetch(ctx, false)
}

// FetchSilent reloads the fleet without toggling the loading flag, for
// periodic background polls that must not flicker the UI.
func (s *Breakers) FetchSilent(ctx context.Context) error {
	return s.fetch(ctx, true)
}

func (s *Breakers) fetch(ctx context.Context, silent bool) error {
	s.mu.Lock()
	filter := s.filter
	if !silent {
		s.loading = true
	}
	s.err = ""
	s.mu.Unlock()

	list, err := s.api.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load breakers")
		return err
	}
	s.breakers = list.Breakers
	s.total = list.Total
	return nil
}

// FetchLogs loads the control history matching the filter. A zero
// BreakerID queries the whole fleet.
func (s *Breakers) FetchLogs(ctx context.Context, f models.BreakerLogFilter) error {
	var (
		list *models.BreakerActivityLogList
		err  error
	)
	if f.BreakerID != 0 {
		id := f.BreakerID
		f.BreakerID = 0
		list, err = s.api.ActivityLogs(ctx, id, f)
	} else {
		list, err = s.api.AllActivityLogs(ctx, f)
	}
	if err != nil {
		s.setErr(err, "could not load breaker logs")
		return err
	}
	s.mu.Lock()
	s.logs = list.Logs
	s.logTotal = list.Total
	s.mu.Unlock()
	return nil
}

// FetchStatistics loads the fleet summary.
func (s *Breakers) FetchStatistics(ctx context.Context) error {
	stats, err := s.api.Statistics(ctx)
	if err != nil {
		s.setErr(err, "could not load breaker statistics")
		return err
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// Create registers a breaker and appends it to the fleet.
func (s *Breakers) Create(ctx context.Context, in models.BreakerInput) (*models.Breaker, error) {
	b, err := s.api.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create breaker")
		return nil, err
	}
	s.mu.Lock()
	s.breakers = append(s.breakers, *b)
	s.total++
	s.mu.Unlock()
	return b, nil
}

// Update replaces a breaker's configuration and patches the cached copy.
func (s *Breakers) Update(ctx context.Context, id int, in models.BreakerInput) (*models.Breaker, error) {
	b, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update breaker")
		return nil, err
	}
	s.mu.Lock()
	for i := range s.breakers {
		if s.breakers[i].ID == b.ID {
			s.breakers[i] = *b
		}
	}
	s.mu.Unlock()
	return b, nil
}

// Delete removes a breaker from the server and the cached fleet.
func (s *Breakers) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.setErr(err, "could not delete breaker")
		return err
	}
	s.mu.Lock()
	out := s.breakers[:0]
	for _, b := range s.breakers {
		if b.ID != id {
			out = append(out, b)
		}
	}
	s.breakers = out
	if s.total > 0 {
		s.total--
	}
	s.mu.Unlock()
	return nil
}

// TurnOn switches a breaker on and patches its cached state from the
// command result.
func (s *Breakers) TurnOn(ctx context.Context, id int, reason string) (*models.BreakerControlResult, error) {
	res, err := s.api.TurnOn(ctx, id, reason)
	if err != nil {
		s.setErr(err, "could not turn breaker on")
		return nil, err
	}
	s.applyControlResult(res)
	return res, nil
}

// TurnOff switches a breaker off.
func (s *Breakers) TurnOff(ctx context.Context, id int, reason string) (*models.BreakerControlResult, error) {
	res, err := s.api.TurnOff(ctx, id, reason)
	if err != nil {
		s.setErr(err, "could not turn breaker off")
		return nil, err
	}
	s.applyControlResult(res)
	return res, nil
}

// Sync refreshes one breaker's reported state from the bridge.
func (s *Breakers) Sync(ctx context.Context, id int) (*models.BreakerSyncResult, error) {
	res, err := s.api.Sync(ctx, id)
	if err != nil {
		s.setErr(err, "could not sync breaker")
		return nil, err
	}
	s.mu.Lock()
	for i := range s.breakers {
		if s.breakers[i].ID == res.BreakerID {
			s.breakers[i].CurrentState = res.CurrentState
			s.breakers[i].IsAvailable = res.IsAvailable
			s.breakers[i].LastStateUpdate = res.SyncedAt
		}
	}
	s.mu.Unlock()
	return res, nil
}

// SyncAll refreshes the whole fleet and then refetches it, since the
// sync result carries counts, not states.
func (s *Breakers) SyncAll(ctx context.Context) (*models.BreakerFleetSyncResult, error) {
	res, err := s.api.SyncAll(ctx)
	if err != nil {
		s.setErr(err, "could not sync breakers")
		return nil, err
	}
	if err := s.FetchSilent(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// List returns the cached fleet.
func (s *Breakers) List() []models.Breaker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Breaker, len(s.breakers))
	copy(out, s.breakers)
	return out
}

// Logs returns the cached control history.
func (s *Breakers) Logs() []models.BreakerActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BreakerActivityLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// Statistics returns the last fetched fleet summary.
func (s *Breakers) Statistics() *models.BreakerStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

// ByID returns the cached breaker with the given id, nil if unknown.
func (s *Breakers) ByID(id int) *models.Breaker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.breakers {
		if s.breakers[i].ID == id {
			b := s.breakers[i]
			return &b
		}
	}
	return nil
}

// Total returns the fleet size reported by the server.
func (s *Breakers) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// LogTotal returns the activity log size reported by the server.
func (s *Breakers) LogTotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logTotal
}

// Err returns the last error message.
func (s *Breakers) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a non-silent fleet fetch is in flight.
func (s *Breakers) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Breakers) applyControlResult(res *models.BreakerControlResult) {
	if !res.Success {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	s.mu.Lock()
	for i := range s.breakers {
		if s.breakers[i].ID == res.BreakerID {
			s.breakers[i].CurrentState = res.NewState
			s.breakers[i].LastStateUpdate = now
		}
	}
	s.mu.Unlock()
}

func (s *Breakers) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
