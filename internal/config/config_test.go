// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Backend.URL != "http://localhost:8000" {
		t.Errorf("default backend URL = %q, want http://localhost:8000", cfg.Backend.URL)
	}
	if cfg.Realtime.HeartbeatInterval != 30*time.Second {
		t.Errorf("heartbeat interval = %s, want 30s", cfg.Realtime.HeartbeatInterval)
	}
	if cfg.Realtime.ReconnectInterval != 5*time.Second {
		t.Errorf("reconnect interval = %s, want 5s", cfg.Realtime.ReconnectInterval)
	}
	if cfg.Realtime.MaxReconnectAttempts != 10 {
		t.Errorf("max reconnect attempts = %d, want 10", cfg.Realtime.MaxReconnectAttempts)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ROOMLINE_BACKEND_URL", "https://pms.example.com")
	t.Setenv("ROOMLINE_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Backend.URL != "https://pms.example.com" {
		t.Errorf("backend URL = %q, want env override", cfg.Backend.URL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roomline.yaml")
	content := []byte("backend:\n  url: http://10.0.0.5:9000\nrealtime:\n  max_reconnect_attempts: 3\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Backend.URL != "http://10.0.0.5:9000" {
		t.Errorf("backend URL = %q, want file value", cfg.Backend.URL)
	}
	if cfg.Realtime.MaxReconnectAttempts != 3 {
		t.Errorf("max reconnect attempts = %d, want 3", cfg.Realtime.MaxReconnectAttempts)
	}
	// Values absent from the file keep their defaults.
	if cfg.Realtime.HeartbeatInterval != 30*time.Second {
		t.Errorf("heartbeat interval = %s, want default 30s", cfg.Realtime.HeartbeatInterval)
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ROOMLINE_BACKEND_URL", "backend.url"},
		{"ROOMLINE_REALTIME_MAX_RECONNECT_ATTEMPTS", "realtime.max_reconnect_attempts"},
		{"ROOMLINE_LOGGING_LEVEL", "logging.level"},
		{"ROOMLINE_STATE_DIR", "state.dir"},
	}
	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad scheme", func(c *Config) { c.Backend.URL = "ftp://example.com" }},
		{"zero timeout", func(c *Config) { c.Backend.Timeout = 0 }},
		{"zero heartbeat", func(c *Config) { c.Realtime.HeartbeatInterval = 0 }},
		{"zero reconnect interval", func(c *Config) { c.Realtime.ReconnectInterval = 0 }},
		{"negative attempts", func(c *Config) { c.Realtime.MaxReconnectAttempts = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestWebSocketURL(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"http://localhost:8000", "ws://localhost:8000/api/v1/ws/dashboard"},
		{"https://pms.example.com", "wss://pms.example.com/api/v1/ws/dashboard"},
	}
	for _, tt := range tests {
		cfg := defaultConfig()
		cfg.Backend.URL = tt.backend
		got, err := cfg.WebSocketURL()
		if err != nil {
			t.Fatalf("WebSocketURL() error: %v", err)
		}
		if got != tt.want {
			t.Errorf("WebSocketURL() = %q, want %q", got, tt.want)
		}
	}
}
