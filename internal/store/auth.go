// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Auth is the session store: it owns the bearer token and the current user,
// persists both across restarts, and implements transport.TokenSource so
// the HTTP client can be constructed before any login happens.
type Auth struct {
	api       *api.Auth
	transport *transport.Client
	creds     *CredentialsFile

	mu      sync.RWMutex
	token   string
	user    *models.User
	loading bool
	err     string

	// onSessionExpired runs when the backend rejects the credential (401)
	// or the persisted token turns out expired. The router uses it to move
	// to the login view.
	onSessionExpired func()
}

// NewAuth creates the session store. creds may be nil to disable
// persistence.
func NewAuth(a *api.Auth, tc *transport.Client, creds *CredentialsFile) *Auth {
	return &Auth{api: a, transport: tc, creds: creds}
}

// SetSessionExpiredHook registers the navigation callback fired when the
// session dies. Call before binding the store to the transport's 401 hook.
func (s *Auth) SetSessionExpiredHook(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSessionExpired = fn
}

// Token implements transport.TokenSource.
func (s *Auth) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a session is established.
func (s *Auth) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// User returns a copy of the current user, nil when logged out.
func (s *Auth) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// HasRole reports whether the current user's role is in the allow-list,
// case-insensitively.
func (s *Auth) HasRole(roles []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.HasRole(roles)
}

// Err returns the last auth error message, empty when none.
func (s *Auth) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a login or user fetch is in flight.
func (s *Auth) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Login authenticates, stores the session, persists it, and rearms the
// transport's 401 hook.
func (s *Auth) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	resp, err := s.api.Login(ctx, models.LoginRequest{Username: username, Password: password})

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "login failed")
		s.mu.Unlock()
		return err
	}
	user := resp.User
	s.token = resp.AccessToken
	s.user = &user
	s.mu.Unlock()

	if s.transport != nil {
		s.transport.ResetUnauthorized()
	}
	s.persist()

	logging.Info().Str("username", user.Username).Str("role", user.Role).Msg("Logged in")
	return nil
}

// Logout tells the backend best-effort and always clears the local session.
func (s *Auth) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		logging.Warn().Err(err).Msg("Server-side logout failed, clearing local session anyway")
	}
	s.clearSession()
	logging.Info().Msg("Logged out")
}

// FetchCurrentUser refreshes the user record for the current token.
func (s *Auth) FetchCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.api.Me(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load user")
		s.mu.Unlock()
		return err
	}
	s.user = user
	s.mu.Unlock()

	s.persist()
	return nil
}

// Restore loads the persisted session. It reports whether a usable session
// was found; an expired token is discarded without a server round-trip.
func (s *Auth) Restore() bool {
	if s.creds == nil {
		return false
	}
	creds, err := s.creds.Load()
	if err != nil {
		logging.Warn().Err(err).Msg("Could not load persisted credentials")
		return false
	}
	if creds == nil || creds.AccessToken == "" {
		return false
	}
	if tokenExpired(creds.AccessToken) {
		logging.Info().Msg("Persisted token expired, discarding")
		if err := s.creds.Remove(); err != nil {
			logging.Warn().Err(err).Msg("Could not remove expired credentials")
		}
		return false
	}

	user := creds.User
	s.mu.Lock()
	s.token = creds.AccessToken
	s.user = &user
	s.mu.Unlock()

	logging.Info().Str("username", user.Username).Msg("Session restored")
	return true
}

// HandleUnauthorized feeds the transport's 401 hook: the backend rejected
// the credential, so the session is gone.
func (s *Auth) HandleUnauthorized() {
	s.clearSession()

	s.mu.RLock()
	hook := s.onSessionExpired
	s.mu.RUnlock()
	if hook != nil {
		hook()
	}
}

func (s *Auth) clearSession() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.err = ""
	s.mu.Unlock()

	if s.creds != nil {
		if err := s.creds.Remove(); err != nil {
			logging.Warn().Err(err).Msg("Could not remove persisted credentials")
		}
	}
}

func (s *Auth) persist() {
	if s.creds == nil {
		return
	}
	s.mu.RLock()
	creds := Credentials{AccessToken: s.token}
	if s.user != nil {
		creds.User = *s.user
	}
	s.mu.RUnlock()

	if err := s.creds.Save(&creds); err != nil {
		logging.Warn().Err(err).Msg("Could not persist credentials")
	}
}

// tokenExpired inspects the JWT exp claim locally. The signature is not
// verified; the server remains the authority, this only avoids a doomed
// request on startup. Tokens without an exp claim or that do not parse are
// treated as expired.
func tokenExpired(token string) bool {
	if strings.Count(token, ".") != 2 {
		return true
	}
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}
