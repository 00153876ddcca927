// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
)

// requestBreaker wraps every backend call in a circuit breaker so a dead or
// overloaded backend fails fast instead of queueing requests behind timeouts.
type requestBreaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[*http.Response]
}

func newRequestBreaker(name string) *requestBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state change")
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	}
	return &requestBreaker{
		name: name,
		cb:   gobreaker.NewCircuitBreaker[*http.Response](settings),
	}
}

// execute runs fn through the breaker. Server errors (5xx) count as failures
// so a broken backend trips the breaker; client errors (4xx) do not, since
// they indicate a caller problem rather than backend health.
func (b *requestBreaker) execute(fn func() (*http.Response, error)) (*http.Response, error) {
	resp, err := b.cb.Execute(func() (*http.Response, error) {
		resp, err := fn()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			return resp, &serverError{status: resp.StatusCode}
		}
		return resp, nil
	})
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, breakerResult(err)).Inc()
	return resp, err
}

func breakerResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	default:
		return "failure"
	}
}

// serverError marks a 5xx for the breaker's failure accounting while still
// carrying the response back to the caller for error-detail parsing.
type serverError struct {
	status int
}

func (e *serverError) Error() string {
	return "backend returned " + http.StatusText(e.status)
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
