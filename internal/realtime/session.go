// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

/*
session.go - Realtime dashboard feed

Session maintains one WebSocket connection to the backend's dashboard feed
and dispatches incoming envelopes to subscribed handlers.

Lifecycle:
  - Connect dials the feed. A dial failure moves the session to Errored and
    does not start the retry loop; the caller decides whether to call
    Connect again.
  - Once connected, an unclean close (read error, abnormal closure) schedules
    a reconnect after a fixed delay, up to MaxReconnectAttempts. The attempt
    counter resets on every successful connect. When the budget is exhausted
    the session lands in Errored.
  - A clean close from the server (normal closure, going away) moves the
    session back to Disconnected without retrying.
  - Disconnect is safe from any state: it cancels the pending reconnect and
    heartbeat, sends a normal close frame, and is terminal until the next
    Connect.

The server issues a client id in the first envelope after a connect; the
session reattaches with it (?client_id=) on reconnects so the server can
resume the subscription.
*/
package realtime

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
	"github.com/roomline/roomline-go/internal/models"
)

// State is the connection state of a Session.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Errored
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Synthetic events dispatched for the session's own lifecycle, alongside the
// server's envelopes.
const (
	EventOpen  = "open"
	EventClose = "close"
)

// Config holds the session's tunables. All fields must be set; config.Load
// provides defaults.
type Config struct {
	// URL is the full ws:// or wss:// feed URL.
	URL string

	HeartbeatInterval    time.Duration
	ReconnectInterval    time.Duration
	MaxReconnectAttempts int
	HandshakeTimeout     time.Duration
}

// Session is a reconnecting client of the realtime feed. All methods are
// safe for concurrent use.
type Session struct {
	cfg      Config
	registry *registry

	mu             sync.Mutex
	conn           *websocket.Conn
	state          State
	clientID       string
	lastErr        error
	attempts       int
	reconnectTimer *time.Timer
	stopChan       chan struct{}
	ctx            context.Context
	gen            int

	writeMu sync.Mutex
}

// NewSession creates a session. Call Connect to establish the feed.
func NewSession(cfg Config) *Session {
	return &Session{
		cfg:      cfg,
		registry: newRegistry(),
		state:    Disconnected,
	}
}

// On subscribes a handler to an event (or Wildcard) and returns its
// unsubscribe func.
func (s *Session) On(event string, h Handler) func() {
	return s.registry.add(event, h)
}

// Off drops every handler subscribed to an event.
func (s *Session) Off(event string) {
	s.registry.removeAll(event)
}

// State returns the current connection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ClientID returns the server-issued client id, empty before the first
// connected envelope.
func (s *Session) ClientID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clientID
}

// Err returns the error that moved the session to Errored, nil otherwise.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Connect dials the feed. It returns nil immediately when the session is
// already connected or connecting. The context governs the dial and all
// later reconnects of this session.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.state == Connecting || s.state == Connected {
		s.mu.Unlock()
		logging.Warn().Msg("Realtime session already connected or connecting")
		return nil
	}
	s.state = Connecting
	s.lastErr = nil
	s.ctx = ctx
	gen := s.gen
	s.mu.Unlock()
	s.publishState(Connecting)

	if err := s.dial(ctx, gen); err != nil {
		s.mu.Lock()
		s.state = Errored
		s.lastErr = err
		s.mu.Unlock()
		s.publishState(Errored)
		return err
	}
	return nil
}

// dial performs one connection attempt and, on success, starts the read and
// heartbeat goroutines. State transitions are left to the caller on failure.
// gen is the teardown generation captured before dialing; when Disconnect ran
// in the meantime the dialed connection is discarded instead of committed.
func (s *Session) dial(ctx context.Context, gen int) error {
	wsURL, err := s.feedURL()
	if err != nil {
		return err
	}

	dialer := websocket.Dialer{
		HandshakeTimeout:  s.cfg.HandshakeTimeout,
		EnableCompression: true,
	}
	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket dial failed (HTTP %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("websocket dial: %w", err)
	}

	stop := make(chan struct{})
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		conn.Close()
		return nil
	}
	s.conn = conn
	s.state = Connected
	s.attempts = 0
	s.stopChan = stop
	s.mu.Unlock()

	metrics.RealtimeConnects.Inc()
	s.publishState(Connected)
	logging.Info().Str("url", s.cfg.URL).Msg("Realtime feed connected")

	go s.listen(conn, stop)
	go s.heartbeat(conn, stop)

	s.registry.dispatch(models.Envelope{Event: EventOpen})
	return nil
}

// feedURL appends the client id query parameter when a previous connect
// issued one.
func (s *Session) feedURL() (string, error) {
	s.mu.Lock()
	cid := s.clientID
	s.mu.Unlock()

	if cid == "" {
		return s.cfg.URL, nil
	}
	parsed, err := url.Parse(s.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("parse feed url: %w", err)
	}
	q := parsed.Query()
	q.Set("client_id", cid)
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

// listen reads envelopes until the connection dies or the session stops.
func (s *Session) listen(conn *websocket.Conn, stop chan struct{}) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.handleReadError(err, stop)
			return
		}
		s.handleMessage(data)
	}
}

func (s *Session) handleMessage(data []byte) {
	var env models.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		logging.Error().Err(err).Msg("Failed to parse realtime envelope")
		return
	}

	// Heartbeat replies never reach handlers.
	if env.Event == models.EventPong {
		return
	}

	if env.Event == models.EventConnected {
		var ce models.ConnectedEvent
		if err := json.Unmarshal(env.Data, &ce); err == nil && ce.ClientID != "" {
			s.mu.Lock()
			s.clientID = ce.ClientID
			s.mu.Unlock()
			logging.Info().Str("client_id", ce.ClientID).Msg("Realtime feed registered")
		}
	}

	metrics.RealtimeEventsReceived.WithLabelValues(env.Event).Inc()
	s.registry.dispatch(env)
}

// handleReadError decides whether the close was deliberate, clean, or a
// failure that warrants a reconnect.
func (s *Session) handleReadError(err error, stop chan struct{}) {
	select {
	case <-stop:
		// Disconnect already tore the session down.
		return
	default:
	}

	clean := websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)

	s.mu.Lock()
	s.closeConnLocked()

	if clean {
		s.state = Disconnected
		s.mu.Unlock()
		s.publishState(Disconnected)
		logging.Info().Msg("Realtime feed closed by server")
		s.registry.dispatch(models.Envelope{Event: EventClose})
		return
	}

	logging.Warn().Err(err).Msg("Realtime feed read error")
	s.scheduleReconnectLocked()
	s.registry.dispatch(models.Envelope{Event: EventClose})
}

// scheduleReconnectLocked consumes one reconnect attempt or gives up. Called
// with s.mu held; releases it.
func (s *Session) scheduleReconnectLocked() {
	if s.attempts >= s.cfg.MaxReconnectAttempts {
		s.state = Errored
		s.lastErr = fmt.Errorf("reconnect failed after %d attempts", s.attempts)
		s.mu.Unlock()
		s.publishState(Errored)
		logging.Error().Int("attempts", s.cfg.MaxReconnectAttempts).
			Msg("Realtime feed gave up reconnecting")
		return
	}

	s.attempts++
	attempt := s.attempts
	s.state = Connecting
	ctx := s.ctx
	s.reconnectTimer = time.AfterFunc(s.cfg.ReconnectInterval, func() {
		s.reconnect(ctx)
	})
	s.mu.Unlock()

	metrics.RealtimeReconnectAttempts.Inc()
	s.publishState(Connecting)
	logging.Info().
		Int("attempt", attempt).
		Int("max", s.cfg.MaxReconnectAttempts).
		Dur("delay", s.cfg.ReconnectInterval).
		Msg("Realtime feed reconnecting")
}

// reconnect runs when the reconnect delay elapses.
func (s *Session) reconnect(ctx context.Context) {
	s.mu.Lock()
	if s.state != Connecting {
		// Disconnect won the race.
		s.mu.Unlock()
		return
	}
	s.reconnectTimer = nil
	gen := s.gen
	s.mu.Unlock()

	if ctx != nil && ctx.Err() != nil {
		s.mu.Lock()
		s.state = Disconnected
		s.mu.Unlock()
		s.publishState(Disconnected)
		return
	}

	if err := s.dial(ctx, gen); err != nil {
		logging.Warn().Err(err).Msg("Realtime feed reconnect attempt failed")
		s.mu.Lock()
		if s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.scheduleReconnectLocked()
	}
}

// heartbeat sends the application-level ping every HeartbeatInterval.
func (s *Session) heartbeat(conn *websocket.Conn, stop chan struct{}) {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := s.writeJSON(conn, models.PingMessage{Type: "ping"}); err != nil {
				logging.Debug().Err(err).Msg("Realtime heartbeat write failed")
				return
			}
		}
	}
}

// Send writes a JSON message on the feed. It fails when the session is not
// connected.
func (s *Session) Send(v any) error {
	s.mu.Lock()
	conn := s.conn
	state := s.state
	s.mu.Unlock()

	if state != Connected || conn == nil {
		return fmt.Errorf("realtime session not connected (state %s)", state)
	}
	return s.writeJSON(conn, v)
}

func (s *Session) writeJSON(conn *websocket.Conn, v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := conn.WriteJSON(v); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// Disconnect tears the session down from any state. It cancels a pending
// reconnect, stops the heartbeat, and sends a normal close frame. The
// session stays Disconnected until the next Connect.
func (s *Session) Disconnect() {
	s.mu.Lock()
	if s.reconnectTimer != nil {
		s.reconnectTimer.Stop()
		s.reconnectTimer = nil
	}
	if s.stopChan != nil {
		close(s.stopChan)
		s.stopChan = nil
	}
	s.closeConnLocked()
	s.state = Disconnected
	s.lastErr = nil
	s.gen++
	s.mu.Unlock()

	s.publishState(Disconnected)
	logging.Info().Msg("Realtime feed disconnected")
}

// closeConnLocked closes the connection if present. Called with s.mu held.
func (s *Session) closeConnLocked() {
	if s.conn == nil {
		return
	}
	if err := s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client disconnecting"),
		time.Now().Add(1*time.Second),
	); err != nil {
		logging.Debug().Err(err).Msg("Realtime close frame write failed")
	}
	if err := s.conn.Close(); err != nil {
		logging.Debug().Err(err).Msg("Realtime connection close failed")
	}
	s.conn = nil
}

func (s *Session) publishState(st State) {
	metrics.RealtimeState.Set(float64(st))
}
