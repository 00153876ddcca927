// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package realtime

import (
	"sync"

	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
	"github.com/roomline/roomline-go/internal/models"
)

// Handler receives one realtime envelope. Handlers run on the session's read
// goroutine; long work should be handed off to another goroutine.
type Handler func(models.Envelope)

// Wildcard subscribes a handler to every event.
const Wildcard = "*"

// registry maps event names to handler sets. Dispatch snapshots the handler
// list under a read lock, so handlers may subscribe or unsubscribe from
// within a callback without deadlocking.
type registry struct {
	mu       sync.RWMutex
	handlers map[string]map[int]Handler
	nextID   int
}

func newRegistry() *registry {
	return &registry{handlers: make(map[string]map[int]Handler)}
}

// add registers a handler and returns its unsubscribe func. Unsubscribing
// twice is a no-op.
func (r *registry) add(event string, h Handler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.handlers[event]
	if !ok {
		set = make(map[int]Handler)
		r.handlers[event] = set
	}
	id := r.nextID
	r.nextID++
	set[id] = h

	return func() {
		r.remove(event, id)
	}
}

func (r *registry) remove(event string, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.handlers[event]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(r.handlers, event)
	}
}

// removeAll drops every handler for one event.
func (r *registry) removeAll(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, event)
}

// dispatch invokes the event's handlers and then the wildcard handlers. A
// panicking handler is logged and does not stop the others.
func (r *registry) dispatch(env models.Envelope) {
	r.mu.RLock()
	snapshot := make([]Handler, 0, len(r.handlers[env.Event])+len(r.handlers[Wildcard]))
	for _, h := range r.handlers[env.Event] {
		snapshot = append(snapshot, h)
	}
	for _, h := range r.handlers[Wildcard] {
		snapshot = append(snapshot, h)
	}
	r.mu.RUnlock()

	for _, h := range snapshot {
		callHandler(env, h)
	}
}

func callHandler(env models.Envelope, h Handler) {
	defer func() {
		if rec := recover(); rec != nil {
			metrics.RealtimeHandlerPanics.WithLabelValues(env.Event).Inc()
			logging.Error().
				Str("event", env.Event).
				Interface("panic", rec).
				Msg("Realtime handler panicked")
		}
	}()
	h(env)
}
