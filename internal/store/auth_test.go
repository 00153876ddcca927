// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// signToken builds a JWT with the given expiry. The signature is arbitrary;
// only the exp claim matters for local expiry checks.
func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAuthStore(t *testing.T, b *backend) (*Auth, *CredentialsFile) {
	t.Helper()
	tc := b.client()
	creds := NewCredentialsFile(t.TempDir())
	return NewAuth(api.NewAuth(tc), tc, creds), creds
}

func TestAuthLoginStoresAndPersistsSession(t *testing.T) {
	b := newBackend(t)
	token := signToken(t, time.Now().Add(time.Hour))
	b.handleJSON("POST /auth/login", 200, `{"access_token": "`+token+`", "token_type": "bearer", "user": {"id": 1, "username": "front", "full_name": "Front Desk", "role": "RECEPTION", "is_active": true}}`)

	s, creds := newAuthStore(t, b)
	if err := s.Login(context.Background(), "front", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !s.Authenticated() {
		t.Fatal("not authenticated after login")
	}
	if s.Token() != token {
		t.Error("token source does not return the issued token")
	}
	if got := s.User().Username; got != "front" {
		t.Errorf("user = %q, want front", got)
	}

	saved, err := creds.Load()
	if err != nil {
		t.Fatalf("Load persisted credentials: %v", err)
	}
	if saved == nil || saved.AccessToken != token {
		t.Error("session not persisted")
	}
}

func TestAuthRestoreRejectsExpiredToken(t *testing.T) {
	b := newBackend(t)
	s, creds := newAuthStore(t, b)

	expired := signToken(t, time.Now().Add(-time.Hour))
	if err := creds.Save(&Credentials{AccessToken: expired, User: models.User{ID: 1, Username: "front"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if s.Restore() {
		t.Fatal("Restore accepted an expired token")
	}
	if s.Authenticated() {
		t.Error("session established from expired token")
	}

	// The dead credential file is removed so the next start skips it.
	saved, err := creds.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved != nil {
		t.Error("expired credentials not removed")
	}
}

func TestAuthRestoreAcceptsLiveToken(t *testing.T) {
	b := newBackend(t)
	s, creds := newAuthStore(t, b)

	live := signToken(t, time.Now().Add(time.Hour))
	if err := creds.Save(&Credentials{AccessToken: live, User: models.User{ID: 1, Username: "front", Role: "RECEPTION"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !s.Restore() {
		t.Fatal("Restore rejected a live token")
	}
	if s.Token() != live {
		t.Error("restored token not served to the transport")
	}
	if !s.HasRole([]string{"admin", "reception"}) {
		t.Error("restored role should match case-insensitively")
	}
}

func TestAuthRestoreWithoutPersistedSession(t *testing.T) {
	b := newBackend(t)
	s, _ := newAuthStore(t, b)
	if s.Restore() {
		t.Error("Restore reported a session with no credential file")
	}
}

func TestAuthHandleUnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	b := newBackend(t)
	token := signToken(t, time.Now().Add(time.Hour))
	b.handleJSON("POST /auth/login", 200, `{"access_token": "`+token+`", "token_type": "bearer", "user": {"id": 1, "username": "front", "full_name": "Front Desk", "role": "RECEPTION", "is_active": true}}`)

	s, creds := newAuthStore(t, b)
	fired := false
	s.SetSessionExpiredHook(func() { fired = true })

	if err := s.Login(context.Background(), "front", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s.HandleUnauthorized()

	if !fired {
		t.Error("session expired hook did not fire")
	}
	if s.Authenticated() || s.User() != nil {
		t.Error("session not cleared")
	}
	saved, err := creds.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved != nil {
		t.Error("persisted credentials survived a 401")
	}
}

func TestAuthLogoutClearsLocalSessionOnServerFailure(t *testing.T) {
	b := newBackend(t)
	token := signToken(t, time.Now().Add(time.Hour))
	b.handleJSON("POST /auth/login", 200, `{"access_token": "`+token+`", "token_type": "bearer", "user": {"id": 1, "username": "front", "full_name": "Front Desk", "role": "RECEPTION", "is_active": true}}`)
	// no logout route: the server call 404s

	s, _ := newAuthStore(t, b)
	if err := s.Login(context.Background(), "front", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s.Logout(context.Background())

	if s.Authenticated() {
		t.Error("local session survived logout with a failing server")
	}
}

func TestAuthUnauthorizedHookIntegration(t *testing.T) {
	b := newBackend(t)
	b.handleJSON("GET /rooms/", 401, `{"detail": "Could not validate credentials"}`)

	creds := NewCredentialsFile(t.TempDir())
	var s *Auth
	tc := transport.New(
		transport.Config{BaseURL: b.srv.URL, Timeout: 2 * time.Second},
		transport.WithTokenSource(transport.TokenFunc(func() string { return "stale" })),
		transport.WithUnauthorizedHook(func() { s.HandleUnauthorized() }),
	)
	s = NewAuth(api.NewAuth(tc), tc, creds)

	expired := false
	s.SetSessionExpiredHook(func() { expired = true })

	rooms := api.NewRooms(tc)
	_, err := rooms.List(context.Background(), models.RoomListFilter{})
	if err == nil {
		t.Fatal("expected 401 error")
	}
	if !transport.IsUnauthorized(err) {
		t.Fatalf("err = %v, want 401 APIError", err)
	}
	if !expired {
		t.Error("401 did not reach the session expired hook")
	}
}
