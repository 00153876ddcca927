// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/realtime"
	"github.com/roomline/roomline-go/internal/transport"
)

// backend is a scriptable JSON API mock. Routes are keyed "METHOD /path"
// relative to the /api/v1 prefix; unknown routes 404.
type backend struct {
	srv *httptest.Server

	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	hits   map[string]int
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{
		routes: make(map[string]func(http.ResponseWriter, *http.Request)),
		hits:   make(map[string]int),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api/v1")
		b.mu.Lock()
		b.hits[key]++
		handler := b.routes[key]
		b.mu.Unlock()
		if handler == nil {
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

// handleJSON scripts a route to answer with a fixed JSON document.
func (b *backend) handleJSON(key string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func (b *backend) handle(key string, fn func(w http.ResponseWriter, r *http.Request)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = fn
}

func (b *backend) hitCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func (b *backend) client() *transport.Client {
	return transport.New(transport.Config{BaseURL: b.srv.URL, Timeout: 2 * time.Second})
}

// feedConn is one accepted realtime connection.
type feedConn struct {
	conn  *websocket.Conn
	query url.Values
}

// feedServer is a mock realtime feed for reconciliation tests.
type feedServer struct {
	srv   *httptest.Server
	conns chan feedConn
}

func newFeedServer(t *testing.T) *feedServer {
	t.Helper()
	up := websocket.Upgrader{}
	fs := &feedServer{conns: make(chan feedConn, 8)}
	fs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		fs.conns <- feedConn{conn: c, query: r.URL.Query()}
	}))
	t.Cleanup(fs.srv.Close)
	return fs
}

func (fs *feedServer) url() string {
	return "ws" + strings.TrimPrefix(fs.srv.URL, "http")
}

func (fs *feedServer) accept(t *testing.T) feedConn {
	t.Helper()
	select {
	case fc := <-fs.conns:
		return fc
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for client connection")
		return feedConn{}
	}
}

func (fc feedConn) sendEnvelope(t *testing.T, event string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal event data: %v", err)
	}
	if err := fc.conn.WriteJSON(models.Envelope{Event: event, Data: raw}); err != nil {
		t.Fatalf("write envelope: %v", err)
	}
}

// newFeedSession connects a realtime session to the mock feed and hands
// back the server side of the connection.
func newFeedSession(t *testing.T) (*realtime.Session, feedConn) {
	t.Helper()
	fs := newFeedServer(t)
	sess := realtime.NewSession(realtime.Config{
		URL:                  fs.url(),
		HeartbeatInterval:    time.Minute,
		ReconnectInterval:    40 * time.Millisecond,
		MaxReconnectAttempts: 3,
		HandshakeTimeout:     2 * time.Second,
	})
	t.Cleanup(sess.Disconnect)
	if err := sess.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return sess, fs.accept(t)
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
