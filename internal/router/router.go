// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

// Package router maps view paths to access rules and decides, per
// navigation, whether to proceed or redirect.
package router

import "strings"

// Route is one entry of the declarative route table.
type Route struct {
	Path string
	Name string

	// RequiresAuth defaults to true when nil; only the login route opts out.
	RequiresAuth *bool

	// Roles is the allow-list for this view. Empty means any
	// authenticated user.
	Roles []string
}

func (r Route) requiresAuth() bool {
	return r.RequiresAuth == nil || *r.RequiresAuth
}

// AuthView is the guard's read-only view of the session store.
type AuthView interface {
	Authenticated() bool
	HasRole(roles []string) bool
}

// Decision is the outcome of resolving a navigation target.
type Decision interface{ decision() }

// Proceed allows the navigation.
type Proceed struct{}

// RedirectLogin sends the user to the login view, preserving the intended
// destination so a successful login can resume it.
type RedirectLogin struct {
	Redirect string
}

// RedirectHome sends the user to the home view.
type RedirectHome struct{}

func (Proceed) decision()       {}
func (RedirectLogin) decision() {}
func (RedirectHome) decision()  {}

// Guard resolves navigations against a route table and the session state.
type Guard struct {
	routes []Route
	auth   AuthView
}

// NewGuard builds a guard over the given table. A nil table uses
// DefaultRoutes.
func NewGuard(routes []Route, auth AuthView) *Guard {
	if routes == nil {
		routes = DefaultRoutes()
	}
	return &Guard{routes: routes, auth: auth}
}

// Lookup returns the route for a path, matching the longest registered
// prefix so detail paths inherit their section's rules.
func (g *Guard) Lookup(path string) (Route, bool) {
	var (
		best      Route
		bestLen   = -1
		foundBest bool
	)
	for _, r := range g.routes {
		if !pathMatches(r.Path, path) {
			continue
		}
		if len(r.Path) > bestLen {
			best = r
			bestLen = len(r.Path)
			foundBest = true
		}
	}
	return best, foundBest
}

// Resolve applies the guard rules in order: unauthenticated users go to
// login with the target preserved, authenticated users never see the login
// view again, and role restrictions bounce to home. Unknown paths proceed;
// the view layer renders its own not-found state.
func (g *Guard) Resolve(target string) Decision {
	route, ok := g.Lookup(target)
	if !ok {
		return Proceed{}
	}

	if route.requiresAuth() && !g.auth.Authenticated() {
		return RedirectLogin{Redirect: target}
	}
	if route.Name == "login" && g.auth.Authenticated() {
		return RedirectHome{}
	}
	if len(route.Roles) > 0 && !g.auth.HasRole(route.Roles) {
		return RedirectHome{}
	}
	return Proceed{}
}

// pathMatches reports whether path falls under the route prefix on a path
// segment boundary.
func pathMatches(prefix, path string) bool {
	if prefix == "/" {
		return path == "/"
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || strings.HasPrefix(rest, "/")
}

// DefaultRoutes is the stock view table. Role names are matched
// case-insensitively by the session store.
func DefaultRoutes() []Route {
	noAuth := false
	return []Route{
		{Path: "/login", Name: "login", RequiresAuth: &noAuth},
		{Path: "/", Name: "home"},
		{Path: "/users", Name: "users", Roles: []string{"admin"}},
		{Path: "/room-types", Name: "room-types", Roles: []string{"admin"}},
		{Path: "/rooms", Name: "rooms", Roles: []string{"admin", "reception"}},
		{Path: "/room-rates", Name: "room-rates", Roles: []string{"admin"}},
		{Path: "/dashboard", Name: "dashboard", Roles: []string{"admin", "reception"}},
		{Path: "/bookings", Name: "bookings"},
		{Path: "/check-ins", Name: "check-ins"},
		{Path: "/customers", Name: "customers"},
		{Path: "/housekeeping", Name: "housekeeping", Roles: []string{"admin", "housekeeping"}},
		{Path: "/maintenance", Name: "maintenance", Roles: []string{"admin", "maintenance"}},
		{Path: "/notifications", Name: "notifications"},
		{Path: "/breakers", Name: "breakers", Roles: []string{"admin"}},
		{Path: "/settings", Name: "settings", Roles: []string{"admin"}},
		{Path: "/reports", Name: "reports", Roles: []string{"admin"}},
	}
}
