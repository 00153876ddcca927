// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

// Package main is the deskwatch command, a headless front-desk watcher.
//
// Deskwatch logs into a Roomline backend, keeps every domain store live over
// the realtime feed, and logs a dashboard summary on each refresh. It is both
// a working monitor and a reference for wiring the SDK:
//
//  1. Configuration: defaults, optional YAML file, ROOMLINE_ env vars (Koanf v2)
//  2. Session: restore persisted credentials or log in with -username/-password
//  3. Transport: rate-limited HTTP client with circuit breaker and 401 hook
//  4. Stores: one per domain, bound to the reconnecting WebSocket session
//  5. Metrics: optional Prometheus endpoint via -metrics-addr
//
// # Example Usage
//
//	export ROOMLINE_BACKEND_URL=https://hotel.example.com
//	deskwatch -username front -password secret
//
// A later run reuses the persisted session:
//
//	deskwatch
//
// # Signal Handling
//
// Deskwatch shuts down on SIGINT and SIGTERM: the realtime session sends a
// close frame, store bindings are removed, and the process exits.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/config"
	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/realtime"
	"github.com/roomline/roomline-go/internal/router"
	"github.com/roomline/roomline-go/internal/store"
	"github.com/roomline/roomline-go/internal/transport"
)

func main() {
	var (
		username    = flag.String("username", "", "login username (omit to reuse a persisted session)")
		password    = flag.String("password", "", "login password")
		refresh     = flag.Duration("refresh", time.Minute, "dashboard refresh interval")
		metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address (empty disables)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("backend", cfg.Backend.URL).Msg("Starting deskwatch")

	stateDir, err := cfg.StateDir()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to resolve state directory")
	}
	creds := store.NewCredentialsFile(stateDir)

	// The transport needs a token source before the auth store exists, so
	// both sides go through a late-bound pointer.
	var auth *store.Auth
	tc := transport.New(
		transport.Config{
			BaseURL:   cfg.Backend.URL,
			Timeout:   cfg.Backend.Timeout,
			RateLimit: cfg.Backend.RateLimit,
			RateBurst: cfg.Backend.RateBurst,
		},
		transport.WithTokenSource(transport.TokenFunc(func() string { return auth.Token() })),
		transport.WithUnauthorizedHook(func() { auth.HandleUnauthorized() }),
	)
	auth = store.NewAuth(api.NewAuth(tc), tc, creds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	auth.SetSessionExpiredHook(func() {
		logging.Warn().Msg("Session expired, shutting down")
		cancel()
	})

	if !auth.Restore() {
		if *username == "" {
			logging.Fatal().Msg("No persisted session; pass -username and -password")
		}
		if err := auth.Login(ctx, *username, *password); err != nil {
			logging.Fatal().Err(err).Msg("Login failed")
		}
	}

	// The watcher renders the dashboard view, so it is held to the same
	// access rules as the UI.
	guard := router.NewGuard(nil, auth)
	if _, ok := guard.Resolve("/dashboard").(router.Proceed); !ok {
		logging.Fatal().Msg("Current role may not view the dashboard")
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	// Domain stores.
	dashboard := store.NewDashboard(api.NewDashboard(tc), api.NewMaintenance(tc))
	bookings := store.NewBookings(api.NewBookings(tc))
	checkIns := store.NewCheckIns(api.NewCheckIns(tc), api.NewBookings(tc))
	housekeeping := store.NewHousekeeping(api.NewHousekeeping(tc))
	maintenance := store.NewMaintenance(api.NewMaintenance(tc))
	notifications := store.NewNotifications(api.NewNotifications(tc))
	breakers := store.NewBreakers(api.NewBreakers(tc))

	if err := dashboard.Refresh(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Initial dashboard load failed")
	}
	notifications.FetchUnreadCount(ctx)

	// Realtime session.
	wsURL, err := cfg.WebSocketURL()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to derive feed URL")
	}
	sess := realtime.NewSession(realtime.Config{
		URL:                  wsURL,
		HeartbeatInterval:    cfg.Realtime.HeartbeatInterval,
		ReconnectInterval:    cfg.Realtime.ReconnectInterval,
		MaxReconnectAttempts: cfg.Realtime.MaxReconnectAttempts,
		HandshakeTimeout:     cfg.Realtime.HandshakeTimeout,
	})

	unbinds := []func(){
		dashboard.Bind(ctx, sess),
		checkIns.Bind(ctx, sess),
		housekeeping.Bind(ctx, sess),
		maintenance.Bind(ctx, sess),
		notifications.Bind(ctx, sess),
	}
	defer func() {
		for _, unbind := range unbinds {
			unbind()
		}
	}()

	if err := sess.Connect(ctx); err != nil {
		// The stores still work over HTTP polling; the feed is advisory.
		logging.Warn().Err(err).Msg("Realtime feed unavailable, continuing with polling only")
	}
	defer sess.Disconnect()

	logSummary(dashboard, notifications)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*refresh)
	defer ticker.Stop()

	for {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := dashboard.Refresh(ctx); err != nil {
				logging.Warn().Err(err).Msg("Dashboard refresh failed")
				continue
			}
			if err := breakers.FetchSilent(ctx); err != nil {
				logging.Warn().Err(err).Msg("Breaker poll failed")
			}
			if err := bookings.Fetch(ctx); err != nil {
				logging.Warn().Err(err).Msg("Booking refresh failed")
			}
			notifications.FetchUnreadCount(ctx)
			logSummary(dashboard, notifications)
		}
	}
}

// logSummary writes one structured line describing the current house state.
func logSummary(dashboard *store.Dashboard, notifications *store.Notifications) {
	stats := dashboard.Stats()
	if stats == nil {
		return
	}
	logging.Info().
		Int("total_rooms", stats.TotalRooms).
		Int("occupied", stats.OccupiedRooms).
		Int("available", stats.AvailableRooms).
		Float64("occupancy_rate", stats.OccupancyRate).
		Str("revenue_today", stats.RevenueToday).
		Int("overtime_rooms", len(dashboard.OvertimeRooms())).
		Int("pending_maintenance", stats.PendingMaintenanceCount).
		Int("unread_notifications", notifications.Unread()).
		Msg("House status")
}

// serveMetrics exposes the Prometheus registry. Failures are fatal only to
// the metrics endpoint, never to the watcher.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logging.Info().Str("addr", addr).Msg("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logging.Error().Err(err).Msg("Metrics server stopped")
	}
}
