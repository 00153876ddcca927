// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

// Package metrics provides Prometheus instrumentation for the client:
//   - HTTP request latency, throughput, and error counts per resource
//   - Realtime (WebSocket) connection lifecycle and event dispatch
//   - Circuit breaker state transitions
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP client metrics

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roomline_http_request_duration_seconds",
			Help:    "Duration of backend API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomline_http_requests_total",
			Help: "Total number of backend API requests",
		},
		[]string{"method", "resource", "status"},
	)

	HTTPRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomline_http_request_errors_total",
			Help: "Total number of failed backend API requests",
		},
		[]string{"method", "resource", "error_type"}, // "transport", "api", "unauthorized"
	)

	// Realtime (WebSocket) metrics

	RealtimeConnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomline_realtime_connects_total",
			Help: "Total number of successful WebSocket connections",
		},
	)

	RealtimeReconnectAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomline_realtime_reconnect_attempts_total",
			Help: "Total number of WebSocket reconnection attempts",
		},
	)

	RealtimeState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roomline_realtime_state",
			Help: "Current realtime session state (0=disconnected, 1=connecting, 2=connected, 3=errored)",
		},
	)

	RealtimeEventsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomline_realtime_events_received_total",
			Help: "Total number of realtime events received by event type",
		},
		[]string{"event"},
	)

	RealtimeHandlerPanics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomline_realtime_handler_panics_total",
			Help: "Total number of recovered panics in realtime event handlers",
		},
		[]string{"event"},
	)

	// Circuit breaker metrics

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roomline_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomline_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomline_circuit_breaker_requests_total",
			Help: "Circuit breaker request outcomes",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	// Store reconciliation metrics

	StoreRefetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomline_store_refetches_total",
			Help: "Total number of reconciliation refetches triggered by realtime events",
		},
		[]string{"store", "event"},
	)
)
