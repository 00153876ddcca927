// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/roomline/roomline-go/internal/metrics"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, opts...)
	return c, srv
}

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}), WithTokenSource(TokenFunc(func() string { return "tok-123" })))

	var out struct{}
	if err := c.Get(context.Background(), "/rooms", nil, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestGetOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}), WithTokenSource(TokenFunc(func() string { return "" })))

	if err := c.Get(context.Background(), "/rooms", nil, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestRequestPathAndQuery(t *testing.T) {
	var gotPath, gotQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))

	q := url.Values{}
	q.Set("skip", "20")
	q.Set("limit", "10")
	if err := c.Get(context.Background(), "/bookings", q, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotPath != "/api/v1/bookings" {
		t.Errorf("path = %q, want /api/v1/bookings", gotPath)
	}
	if gotQuery != "limit=10&skip=20" {
		t.Errorf("query = %q, want limit=10&skip=20", gotQuery)
	}
}

func TestPostEncodesJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7}`))
	}))

	in := map[string]any{"room_number": "204"}
	var out struct {
		ID int `json:"id"`
	}
	if err := c.Post(context.Background(), "/rooms", in, &out); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["room_number"] != "204" {
		t.Errorf("body = %v", gotBody)
	}
	if out.ID != 7 {
		t.Errorf("out.ID = %d, want 7", out.ID)
	}
}

func TestErrorDetailVerbatim(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "Room 204 is already occupied"}`))
	}))

	err := c.Post(context.Background(), "/checkins", map[string]any{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d, want 409", apiErr.StatusCode)
	}
	if apiErr.Detail != "Room 204 is already occupied" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestUnauthorizedHookFiresOnce(t *testing.T) {
	var hookCalls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}), WithUnauthorizedHook(func() {
		hookCalls.Add(1)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := c.Get(context.Background(), "/rooms", nil, nil)
			if !IsUnauthorized(err) {
				t.Errorf("IsUnauthorized(%v) = false", err)
			}
		}()
	}
	wg.Wait()

	if got := hookCalls.Load(); got != 1 {
		t.Errorf("hook fired %d times, want 1", got)
	}
}

func TestResetUnauthorizedRearmsHook(t *testing.T) {
	var hookCalls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "expired"}`))
	}), WithUnauthorizedHook(func() {
		hookCalls.Add(1)
	}))

	c.Get(context.Background(), "/rooms", nil, nil)
	c.Get(context.Background(), "/rooms", nil, nil)
	if got := hookCalls.Load(); got != 1 {
		t.Fatalf("hook fired %d times before reset, want 1", got)
	}

	c.ResetUnauthorized()
	c.Get(context.Background(), "/rooms", nil, nil)
	if got := hookCalls.Load(); got != 2 {
		t.Errorf("hook fired %d times after reset, want 2", got)
	}
}

func TestPostMultipartUsesBoundaryContentType(t *testing.T) {
	var gotContentType string
	var gotField, gotFile string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotField = r.FormValue("description")
		if f, _, err := r.FormFile("photo"); err == nil {
			var sb strings.Builder
			buf := make([]byte, 32)
			for {
				n, rerr := f.Read(buf)
				sb.Write(buf[:n])
				if rerr != nil {
					break
				}
			}
			gotFile = sb.String()
			f.Close()
		}
		w.Write([]byte(`{}`))
	}))

	payload := NewMultipartPayload().
		AddField("description", "Leaking faucet").
		AddFile("photo", "faucet.jpg", strings.NewReader("jpegbytes"))
	if err := c.PostMultipart(context.Background(), "/maintenance", payload, nil); err != nil {
		t.Fatalf("PostMultipart: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotField != "Leaking faucet" {
		t.Errorf("description = %q", gotField)
	}
	if gotFile != "jpegbytes" {
		t.Errorf("file = %q", gotFile)
	}
}

func TestServerErrorStillParsesDetail(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "database unavailable"}`))
	}))

	err := c.Get(context.Background(), "/dashboard", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "database unavailable" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestDeleteDiscardsNoContent(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := c.Delete(context.Background(), "/bookings/3", nil); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestResourceLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/rooms", "rooms"},
		{"/rooms/204", "rooms"},
		{"/checkins/7/transfer", "checkins"},
		{"", "root"},
	}
	for _, tt := range tests {
		if got := resourceLabel(tt.path); got != tt.want {
			t.Errorf("resourceLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRequestRecordsBreakerOutcome(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/broken" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}))

	successBefore := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("backend-api", "success"))
	if err := c.Get(context.Background(), "/rooms", nil, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	successAfter := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("backend-api", "success"))
	if successAfter != successBefore+1 {
		t.Errorf("success outcomes = %v, want %v", successAfter, successBefore+1)
	}

	failureBefore := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("backend-api", "failure"))
	if err := c.Get(context.Background(), "/broken", nil, nil); err == nil {
		t.Fatal("Get on 503 route: want error")
	}
	failureAfter := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("backend-api", "failure"))
	if failureAfter != failureBefore+1 {
		t.Errorf("failure outcomes = %v, want %v", failureAfter, failureBefore+1)
	}
}
