// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package router

import (
	"strings"
	"testing"
)

// fakeAuth is a canned session view.
type fakeAuth struct {
	authenticated bool
	role          string
}

func (f fakeAuth) Authenticated() bool { return f.authenticated }

func (f fakeAuth) HasRole(roles []string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, f.role) {
			return true
		}
	}
	return false
}

func TestGuardResolve(t *testing.T) {
	tests := []struct {
		name   string
		auth   fakeAuth
		target string
		want   Decision
	}{
		{"anonymous to protected view", fakeAuth{}, "/dashboard", RedirectLogin{Redirect: "/dashboard"}},
		{"anonymous to home", fakeAuth{}, "/", RedirectLogin{Redirect: "/"}},
		{"anonymous to login", fakeAuth{}, "/login", Proceed{}},
		{"authenticated back to login", fakeAuth{authenticated: true, role: "RECEPTION"}, "/login", RedirectHome{}},
		{"reception to dashboard", fakeAuth{authenticated: true, role: "RECEPTION"}, "/dashboard", Proceed{}},
		{"reception to admin view", fakeAuth{authenticated: true, role: "RECEPTION"}, "/settings", RedirectHome{}},
		{"housekeeping to housekeeping", fakeAuth{authenticated: true, role: "HOUSEKEEPING"}, "/housekeeping", Proceed{}},
		{"housekeeping to maintenance", fakeAuth{authenticated: true, role: "HOUSEKEEPING"}, "/maintenance", RedirectHome{}},
		{"admin anywhere", fakeAuth{authenticated: true, role: "ADMIN"}, "/breakers", Proceed{}},
		{"role match ignores case", fakeAuth{authenticated: true, role: "admin"}, "/reports", Proceed{}},
		{"unrestricted view any role", fakeAuth{authenticated: true, role: "MAINTENANCE"}, "/notifications", Proceed{}},
		{"detail path inherits section rules", fakeAuth{authenticated: true, role: "RECEPTION"}, "/breakers/4/logs", RedirectHome{}},
		{"unknown path proceeds", fakeAuth{authenticated: true, role: "RECEPTION"}, "/no-such-view", Proceed{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(nil, tt.auth)
			got := g.Resolve(tt.target)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.target, got, tt.want)
			}
		})
	}
}

func TestGuardLookupLongestPrefix(t *testing.T) {
	g := NewGuard(nil, fakeAuth{})

	route, ok := g.Lookup("/room-rates/7")
	if !ok || route.Name != "room-rates" {
		t.Errorf("Lookup(/room-rates/7) = %+v, want room-rates", route)
	}

	// "/rooms" must not swallow "/room-rates": prefix matching is on
	// segment boundaries.
	route, ok = g.Lookup("/room-rates")
	if !ok || route.Name != "room-rates" {
		t.Errorf("Lookup(/room-rates) = %+v, want room-rates", route)
	}

	route, ok = g.Lookup("/rooms/12")
	if !ok || route.Name != "rooms" {
		t.Errorf("Lookup(/rooms/12) = %+v, want rooms", route)
	}

	if _, ok := g.Lookup("/roomsmith"); ok {
		t.Error("partial segment should not match /rooms")
	}
}

func TestGuardHomeMatchesExactly(t *testing.T) {
	g := NewGuard(nil, fakeAuth{authenticated: true, role: "RECEPTION"})

	route, ok := g.Lookup("/")
	if !ok || route.Name != "home" {
		t.Errorf("Lookup(/) = %+v, want home", route)
	}
	if _, ok := g.Lookup("/nonexistent"); ok {
		t.Error("home route must not act as a catch-all")
	}
}

func TestGuardCustomTable(t *testing.T) {
	noAuth := false
	g := NewGuard([]Route{
		{Path: "/status", Name: "status", RequiresAuth: &noAuth},
	}, fakeAuth{})

	if got := g.Resolve("/status"); got != (Proceed{}) {
		t.Errorf("public route = %#v, want proceed", got)
	}
}
