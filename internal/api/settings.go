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

// Settings calls the system configuration endpoints.
type Settings struct {
	t *transport.Client
}

func NewSettings(t *transport.Client) *Settings {
	return &Settings{t: t}
}

// Get returns the full settings document.
func (s *Settings) Get(ctx context.Context) (*models.SystemSettings, error) {
	var out models.SystemSettings
	if err := s.t.Get(ctx, "/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the settings document.
func (s *Settings) Update(ctx context.Context, in models.SystemSettings) (*models.SystemSettings, error) {
	var out models.SystemSettings
	if err := s.t.Put(ctx, "/settings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TemporaryStayHours returns the configured temporary stay duration.
func (s *Settings) TemporaryStayHours(ctx context.Context) (int, error) {
	var out struct {
		TemporaryStayDurationHours int `json:"temporary_stay_duration_hours"`
	}
	if err := s.t.Get(ctx, "/settings/temporary-stay-hours", nil, &out); err != nil {
		return 0, err
	}
	return out.TemporaryStayDurationHours, nil
}

// TestTelegram sends a connectivity test message through the configured bot.
func (s *Settings) TestTelegram(ctx context.Context, in models.TelegramSettings) (*models.TelegramTestResult, error) {
	var out models.TelegramTestResult
	if err := s.t.Post(ctx, "/settings/test-telegram", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
