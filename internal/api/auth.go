// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package api

import (
	"context"

	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// Auth calls the authentication endpoints.
type Auth struct {
	t *transport.Client
}

func NewAuth(t *transport.Client) *Auth {
	return &Auth{t: t}
}

// Login exchanges credentials for a bearer token and the user record.
func (a *Auth) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := a.t.Post(ctx, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the session server-side.
func (a *Auth) Logout(ctx context.Context) error {
	return a.t.Post(ctx, "/auth/logout", nil, nil)
}

// Me returns the user record for the current bearer token.
func (a *Auth) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.t.Get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
