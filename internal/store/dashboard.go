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
	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/realtime"
)

// Dashboard caches the front-desk overview: per-room cards, aggregate
// stats, and overtime alerts, kept current by realtime reconciliation.
type Dashboard struct {
	api         *api.Dashboard
	maintenance *api.Maintenance

	mu          sync.RWMutex
	rooms       []models.DashboardRoomCard
	stats       *models.DashboardStats
	alerts      []models.OvertimeAlert
	lastUpdated string
	loading     bool
	err         string
}

// NewDashboard creates the dashboard store. maintenance may be nil to skip
// the pending-maintenance stat enrichment.
func NewDashboard(d *api.Dashboard, m *api.Maintenance) *Dashboard {
	return &Dashboard{api: d, maintenance: m}
}

// Refresh loads the full dashboard: snapshot, overtime alerts, and the
// optional maintenance enrichment.
func (s *Dashboard) Refresh(ctx context.Context) error {
	if err := s.Fetch(ctx); err != nil {
		return err
	}
	if err := s.FetchOvertimeAlerts(ctx); err != nil {
		return err
	}
	s.fetchMaintenanceStats(ctx)
	return nil
}

// Fetch loads the combined rooms+stats snapshot.
func (s *Dashboard) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	snap, err := s.api.Get(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load dashboard")
		return err
	}
	s.rooms = snap.Rooms
	stats := snap.Stats
	s.stats = &stats
	s.lastUpdated = snap.LastUpdated
	return nil
}

// FetchRooms reloads only the room cards.
func (s *Dashboard) FetchRooms(ctx context.Context) error {
	rooms, err := s.api.Rooms(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errMessage(err, "could not load rooms")
		return err
	}
	s.rooms = rooms
	s.lastUpdated = time.Now().UTC().Format(time.RFC3339)
	return nil
}

// FetchStats reloads only the aggregate counters, preserving the
// maintenance enrichment.
func (s *Dashboard) FetchStats(ctx context.Context) error {
	stats, err := s.api.Stats(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errMessage(err, "could not load stats")
		return err
	}
	if s.stats != nil && stats.PendingMaintenanceCount == 0 {
		stats.PendingMaintenanceCount = s.stats.PendingMaintenanceCount
	}
	s.stats = stats
	return nil
}

// FetchOvertimeAlerts reloads the overtime alert list.
func (s *Dashboard) FetchOvertimeAlerts(ctx context.Context) error {
	alerts, err := s.api.OvertimeAlerts(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errMessage(err, "could not load overtime alerts")
		return err
	}
	s.alerts = alerts.Data
	return nil
}

// fetchMaintenanceStats folds pending+in-progress maintenance counts into
// the stats. Best-effort: failures are logged, not surfaced.
func (s *Dashboard) fetchMaintenanceStats(ctx context.Context) {
	if s.maintenance == nil {
		return
	}
	ms, err := s.maintenance.Stats(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Maintenance stats enrichment failed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats != nil {
		s.stats.PendingMaintenanceCount = ms.PendingTasks + ms.InProgressTasks
	}
}

// Rooms returns the cached room cards.
func (s *Dashboard) Rooms() []models.DashboardRoomCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DashboardRoomCard, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Stats returns a copy of the cached stats, nil before the first fetch.
func (s *Dashboard) Stats() *models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

// OvertimeAlerts returns the cached alert list.
func (s *Dashboard) OvertimeAlerts() []models.OvertimeAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.OvertimeAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// LastUpdated returns the snapshot timestamp.
func (s *Dashboard) LastUpdated() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Err returns the last fetch error message.
func (s *Dashboard) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ByStatus returns the cached rooms in one status.
func (s *Dashboard) ByStatus(status models.RoomStatus) []models.DashboardRoomCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DashboardRoomCard
	for _, r := range s.rooms {
		if r.Status == string(status) {
			out = append(out, r)
		}
	}
	return out
}

// OvertimeRooms returns the cached rooms flagged overtime.
func (s *Dashboard) OvertimeRooms() []models.DashboardRoomCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DashboardRoomCard
	for _, r := range s.rooms {
		if r.IsOvertime {
			out = append(out, r)
		}
	}
	return out
}

// OccupancyRate returns the server's occupancy rate when stats are loaded,
// otherwise the rate computed from the cached room cards.
func (s *Dashboard) OccupancyRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats != nil {
		return s.stats.OccupancyRate
	}
	if len(s.rooms) == 0 {
		return 0
	}
	occupied := 0
	for _, r := range s.rooms {
		if r.Status == string(models.RoomOccupied) {
			occupied++
		}
	}
	return float64(occupied) / float64(len(s.rooms)) * 100
}

// RoomByID finds a cached room card by room id.
func (s *Dashboard) RoomByID(id int) (models.DashboardRoomCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.DashboardRoomCard{}, false
}

// RoomByNumber finds a cached room card by room number.
func (s *Dashboard) RoomByNumber(number string) (models.DashboardRoomCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.RoomNumber == number {
			return r, true
		}
	}
	return models.DashboardRoomCard{}, false
}

// Bind registers the reconciliation handlers. Structural changes refetch
// from the API; overtime alerts are upserted in place because the event
// carries the full alert. Returns the unbind func.
func (s *Dashboard) Bind(ctx context.Context, sess *realtime.Session) func() {
	refetch := func(event string) {
		metrics.StoreRefetches.WithLabelValues("dashboard", event).Inc()
		if err := s.FetchRooms(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Dashboard room refetch failed")
		}
		if err := s.FetchStats(ctx); err != nil {
			logging.Warn().Err(err).Str("event", event).Msg("Dashboard stats refetch failed")
		}
	}

	unsubs := []func(){
		sess.On(models.EventRoomStatusChanged, func(env models.Envelope) {
			refetch(env.Event)
		}),
		sess.On(models.EventCheckIn, func(env models.Envelope) {
			refetch(env.Event)
		}),
		sess.On(models.EventRoomTransfer, func(env models.Envelope) {
			refetch(env.Event)
		}),
		sess.On(models.EventCheckOut, func(env models.Envelope) {
			refetch(env.Event)
			var ev models.CheckOutEvent
			if err := unmarshalEvent(env, &ev); err != nil {
				return
			}
			s.dropAlert(ev.RoomID)
		}),
		sess.On(models.EventOvertimeAlert, func(env models.Envelope) {
			var alert models.OvertimeAlert
			if err := unmarshalEvent(env, &alert); err != nil {
				return
			}
			s.upsertAlert(alert)
		}),
	}
	return unbindAll(unsubs)
}

// upsertAlert replaces or appends the alert keyed by room id, and flips the
// room card's overtime flag.
func (s *Dashboard) upsertAlert(alert models.OvertimeAlert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.alerts {
		if s.alerts[i].RoomID == alert.RoomID {
			s.alerts[i] = alert
			replaced = true
			break
		}
	}
	if !replaced {
		s.alerts = append(s.alerts, alert)
	}

	for i := range s.rooms {
		if s.rooms[i].ID == alert.RoomID {
			s.rooms[i].IsOvertime = true
			minutes := alert.OvertimeMinutes
			s.rooms[i].OvertimeMinutes = &minutes
			break
		}
	}
}

// dropAlert removes the alert for a room, if present.
func (s *Dashboard) dropAlert(roomID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if a.RoomID != roomID {
			kept = append(kept, a)
		}
	}
	s.alerts = kept
}
