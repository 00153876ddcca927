// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/realtime"
)

const notificationPageSize = 20

// defaultRefreshDelay keeps the pending record visible briefly before the
// authoritative refetch replaces it with the server row.
const defaultRefreshDelay = 2 * time.Second

// NotificationRecord is one inbox entry. A pushed event arrives without a
// server id, so it is inserted as Pending under a temporary id until the
// delayed refetch swaps in the persisted row.
type NotificationRecord struct {
	models.Notification

	Pending bool
	TempID  string
}

// Notifications caches the staff inbox with optimistic insertion of pushed
// events.
type Notifications struct {
	api *api.Notifications

	mu      sync.RWMutex
	records []NotificationRecord
	total   int
	unread  int
	offset  int
	loading bool
	err     string

	refreshDelay time.Duration
	refreshTimer *time.Timer
	boundCtx     context.Context
}

func NewNotifications(a *api.Notifications) *Notifications {
	return &Notifications{api: a, refreshDelay: defaultRefreshDelay}
}

// Fetch loads the current inbox page, replacing any pending records.
func (s *Notifications) Fetch(ctx context.Context) error {
	s.mu.Lock()
	offset := s.offset
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	list, err := s.api.List(ctx, notificationPageSize, offset, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load notifications")
		return err
	}
	records := make([]NotificationRecord, len(list.Data))
	for i, n := range list.Data {
		records[i] = NotificationRecord{Notification: n}
	}
	s.records = records
	s.total = list.Total
	s.unread = list.UnreadCount
	return nil
}

// FetchUnreadCount refreshes the unread badge. Failures are logged, not
// returned; a stale badge is harmless.
func (s *Notifications) FetchUnreadCount(ctx context.Context) {
	count, err := s.api.UnreadCount(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Unread count fetch failed")
		return
	}
	s.mu.Lock()
	s.unread = count
	s.mu.Unlock()
}

// SetPage moves the inbox to the given zero-based page and fetches it.
func (s *Notifications) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	s.mu.Lock()
	s.offset = page * notificationPageSize
	s.mu.Unlock()
	return s.Fetch(ctx)
}

// MarkRead marks one notification read and patches the cached row.
func (s *Notifications) MarkRead(ctx context.Context, id int) error {
	n, err := s.api.MarkRead(ctx, id)
	if err != nil {
		s.setErr(err, "could not mark notification read")
		return err
	}
	s.mu.Lock()
	for i := range s.records {
		if !s.records[i].Pending && s.records[i].ID == id {
			wasUnread := !s.records[i].IsRead
			s.records[i].Notification = *n
			if wasUnread && s.unread > 0 {
				s.unread--
			}
		}
	}
	s.mu.Unlock()
	return nil
}

// MarkAllRead marks every unread notification and zeroes the badge.
func (s *Notifications) MarkAllRead(ctx context.Context) error {
	if _, err := s.api.MarkAllRead(ctx); err != nil {
		s.setErr(err, "could not mark all notifications read")
		return err
	}
	s.mu.Lock()
	for i := range s.records {
		s.records[i].IsRead = true
	}
	s.unread = 0
	s.mu.Unlock()
	return nil
}

// Create adds a notification (admin only) and prepends the persisted row.
func (s *Notifications) Create(ctx context.Context, in models.NotificationInput) (*models.Notification, error) {
	n, err := s.api.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create notification")
		return nil, err
	}
	s.mu.Lock()
	s.records = append([]NotificationRecord{{Notification: *n}}, s.records...)
	s.total++
	if !n.IsRead {
		s.unread++
	}
	s.mu.Unlock()
	return n, nil
}

// Records returns the current inbox page, pending entries included.
func (s *Notifications) Records() []NotificationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]NotificationRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Unread returns the unread badge count.
func (s *Notifications) Unread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// Total returns the inbox size reported by the server.
func (s *Notifications) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Err returns the last error message.
func (s *Notifications) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether an inbox fetch is in flight.
func (s *Notifications) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Bind inserts pushed notifications optimistically. The event payload has
// no server id, so a pending record goes to the head of the inbox and a
// delayed refetch reconciles it against the persisted rows.
func (s *Notifications) Bind(ctx context.Context, sess *realtime.Session) func() {
	s.mu.Lock()
	s.boundCtx = ctx
	s.mu.Unlock()

	unsub := sess.On(models.EventNotification, func(env models.Envelope) {
		var ev models.NotificationEvent
		if err := unmarshalEvent(env, &ev); err != nil {
			return
		}
		metrics.StoreRefetches.WithLabelValues("notifications", env.Event).Inc()
		s.insertPending(ev)
		s.scheduleRefresh()
	})

	return func() {
		s.mu.Lock()
		if s.refreshTimer != nil {
			s.refreshTimer.Stop()
			s.refreshTimer = nil
		}
		s.boundCtx = nil
		s.mu.Unlock()
		unsub()
	}
}

func (s *Notifications) insertPending(ev models.NotificationEvent) {
	rec := NotificationRecord{
		Notification: models.Notification{
			NotificationType: models.NotificationType(ev.NotificationType),
			TargetRole:       models.Role(ev.TargetRole),
			Title:            ev.Title,
			Message:          ev.Message,
			RoomID:           ev.RoomID,
			CreatedAt:        time.Now().UTC().Format(time.RFC3339),
		},
		Pending: true,
		TempID:  uuid.NewString(),
	}
	s.mu.Lock()
	s.records = append([]NotificationRecord{rec}, s.records...)
	s.total++
	s.unread++
	s.mu.Unlock()
}

// scheduleRefresh debounces the authoritative refetch. A burst of pushed
// events ends in a single Fetch.
func (s *Notifications) scheduleRefresh() {
	s.mu.Lock()
	ctx := s.boundCtx
	if s.refreshTimer != nil {
		s.refreshTimer.Stop()
	}
	s.refreshTimer = time.AfterFunc(s.refreshDelay, func() {
		if ctx == nil {
			return
		}
		if err := s.Fetch(ctx); err != nil {
			logging.Warn().Err(err).Msg("Notification refresh after push failed")
		}
	})
	s.mu.Unlock()
}

func (s *Notifications) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
