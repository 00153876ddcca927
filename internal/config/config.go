// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

// Package config loads client configuration from defaults, an optional YAML
// file, and ROOMLINE_-prefixed environment variables, in that order of
// precedence.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"roomline.yaml",
	"roomline.yml",
	"/etc/roomline/config.yaml",
	"/etc/roomline/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "ROOMLINE_CONFIG"

// EnvPrefix is the prefix for all configuration environment variables.
const EnvPrefix = "ROOMLINE_"

// Config is the root configuration for the Roomline client.
type Config struct {
	Backend  BackendConfig  `koanf:"backend"`
	Realtime RealtimeConfig `koanf:"realtime"`
	Logging  LoggingConfig  `koanf:"logging"`
	State    StateConfig    `koanf:"state"`
}

// BackendConfig describes how to reach the Roomline REST backend.
type BackendConfig struct {
	// URL is the backend base URL without the /api/v1 prefix.
	URL string `koanf:"url"`

	// Timeout applies to every HTTP request.
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the maximum number of outbound requests per second.
	// Zero disables client-side rate limiting.
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the burst size for the rate limiter.
	RateBurst int `koanf:"rate_burst"`
}

// RealtimeConfig tunes the WebSocket session.
type RealtimeConfig struct {
	// Path is the dashboard feed endpoint, relative to the backend URL.
	Path string `koanf:"path"`

	// HeartbeatInterval is how often a ping event is sent while connected.
	HeartbeatInterval time.Duration `koanf:"heartbeat_interval"`

	// ReconnectInterval is the fixed delay between reconnection attempts.
	// The delay is deliberately constant, not exponential.
	ReconnectInterval time.Duration `koanf:"reconnect_interval"`

	// MaxReconnectAttempts bounds the reconnection budget. Exhausting it is
	// terminal until Connect is called again.
	MaxReconnectAttempts int `koanf:"max_reconnect_attempts"`

	// HandshakeTimeout bounds the WebSocket dial.
	HandshakeTimeout time.Duration `koanf:"handshake_timeout"`
}

// LoggingConfig mirrors logging.Config for file/env configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StateConfig locates persisted client-side state.
type StateConfig struct {
	// Dir holds the credentials file. Defaults to ~/.config/roomline.
	Dir string `koanf:"dir"`
}

// defaultConfig returns a Config with development-friendly defaults.
// A missing backend URL points at a local development backend.
func defaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:       "http://localhost:8000",
			Timeout:   30 * time.Second,
			RateLimit: 0, // Unlimited by default; the backend is our own
			RateBurst: 10,
		},
		Realtime: RealtimeConfig{
			Path:                 "/api/v1/ws/dashboard",
			HeartbeatInterval:    30 * time.Second,
			ReconnectInterval:    5 * time.Second,
			MaxReconnectAttempts: 10,
			HandshakeTimeout:     10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
		State: StateConfig{
			Dir: "", // Resolved to ~/.config/roomline by StateDir()
		},
	}
}

// Load builds the configuration by layering defaults, an optional YAML file,
// and environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// ROOMLINE_BACKEND_URL -> backend.url
	// ROOMLINE_REALTIME_MAX_RECONNECT_ATTEMPTS -> realtime.max_reconnect_attempts
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, honoring ROOMLINE_CONFIG first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps an environment variable name to a koanf path. The first
// underscore separates the section; the rest stay joined so multi-word field
// names survive (MAX_RECONNECT_ATTEMPTS -> max_reconnect_attempts).
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.SplitN(key, "_", 2)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "." + parts[1]
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil {
		return fmt.Errorf("backend.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.url: unsupported scheme %q", u.Scheme)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive, got %s", c.Backend.Timeout)
	}
	if c.Realtime.HeartbeatInterval <= 0 {
		return fmt.Errorf("realtime.heartbeat_interval must be positive, got %s", c.Realtime.HeartbeatInterval)
	}
	if c.Realtime.ReconnectInterval <= 0 {
		return fmt.Errorf("realtime.reconnect_interval must be positive, got %s", c.Realtime.ReconnectInterval)
	}
	if c.Realtime.MaxReconnectAttempts < 0 {
		return fmt.Errorf("realtime.max_reconnect_attempts must not be negative, got %d", c.Realtime.MaxReconnectAttempts)
	}
	return nil
}

// WebSocketURL derives the ws:// (or wss://) dashboard feed URL from the
// backend URL and realtime path.
func (c *Config) WebSocketURL() (string, error) {
	u, err := url.Parse(c.Backend.URL)
	if err != nil {
		return "", fmt.Errorf("parse backend url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = c.Realtime.Path
	return u.String(), nil
}

// StateDir resolves the directory for persisted client state, creating the
// platform default under the user's home if none is configured.
func (c *Config) StateDir() (string, error) {
	if c.State.Dir != "" {
		return c.State.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "roomline"), nil
}
