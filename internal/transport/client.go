// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

/*
client.go - Backend HTTP transport

Every resource client call funnels through Client.do, which:
  - waits on the outbound rate limiter (when configured)
  - attaches the bearer credential from the injected TokenSource
  - executes the request through the circuit breaker
  - maps non-2xx responses to *APIError with the server's detail verbatim
  - fires the unauthorized hook exactly once per 401 episode

The 401 hook is the single global side effect of the transport: whichever
resource call trips it, the session is cleared and navigation moves to the
login view. The latch rearms on ResetUnauthorized (called after login), so
concurrent 401s from parallel in-flight calls produce one redirect.
*/
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/metrics"
)

// apiPrefix is the backend's versioned base path.
const apiPrefix = "/api/v1"

// TokenSource supplies the current bearer credential. An empty string means
// no credential is attached. The auth store implements this, which lets the
// transport be constructed before any login happens.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a func to TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// Config holds transport construction parameters.
type Config struct {
	// BaseURL is the backend origin without the /api/v1 prefix.
	BaseURL string

	// Timeout applies per request via the underlying http.Client.
	Timeout time.Duration

	// RateLimit caps outbound requests per second; zero disables the limiter.
	RateLimit float64

	// RateBurst is the limiter burst size.
	RateBurst int
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (tests inject
// httptest-backed clients through this).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource injects the bearer credential source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHook registers the callback fired on the first 401 of an
// authenticated episode.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client is the single HTTP request/response wrapper all resource clients
// share. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	breaker *requestBreaker

	onUnauthorized func()
	unauthMu       sync.Mutex
	unauthFired    bool
}

// New creates a transport client for the given backend.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = newRequestBreaker("backend-api")
	return c
}

// ResetUnauthorized rearms the 401 latch. The auth store calls this after a
// successful login so a later credential expiry redirects again.
func (c *Client) ResetUnauthorized() {
	c.unauthMu.Lock()
	defer c.unauthMu.Unlock()
	c.unauthFired = false
}

// fireUnauthorized invokes the hook at most once per armed episode.
func (c *Client) fireUnauthorized() {
	c.unauthMu.Lock()
	fired := c.unauthFired
	c.unauthFired = true
	c.unauthMu.Unlock()

	if fired || c.onUnauthorized == nil {
		return
	}
	logging.Warn().Msg("Credential rejected by backend, clearing session")
	c.onUnauthorized()
}

// Get issues a GET request. out may be nil to discard the response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// Post issues a POST request with a JSON body (body may be nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	r, ct, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, r, ct, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	r, ct, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, r, ct, out)
}

// Patch issues a PATCH request with a JSON body (body may be nil).
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	r, ct, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, nil, r, ct, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", out)
}

// PostMultipart issues a POST with a multipart body. The payload's own
// content type (with boundary) is used; no JSON content type is forced.
func (c *Client) PostMultipart(ctx context.Context, path string, payload *MultipartPayload, out any) error {
	body, contentType, err := payload.Close()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

// encodeJSONBody marshals body for transmission. A nil body yields no reader
// and no content type.
func encodeJSONBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// do executes one request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	reqURL := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.breaker.execute(func() (*http.Response, error) {
		return c.http.Do(req)
	})
	metrics.HTTPRequestDuration.WithLabelValues(method, resource).Observe(time.Since(start).Seconds())
	if err != nil && resp == nil {
		// Dial failures, timeouts, and open-breaker rejections land here.
		// A 5xx comes back as an error for the breaker's accounting but
		// carries the response, so it falls through to status handling.
		metrics.HTTPRequestErrors.WithLabelValues(method, resource, "transport").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.HTTPRequestsTotal.WithLabelValues(method, resource, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := parseAPIError(resp.StatusCode, resp.Body)
		metrics.HTTPRequestErrors.WithLabelValues(method, resource, "unauthorized").Inc()
		c.fireUnauthorized()
		return apiErr
	}
	if resp.StatusCode >= 400 {
		metrics.HTTPRequestErrors.WithLabelValues(method, resource, "api").Inc()
		return parseAPIError(resp.StatusCode, resp.Body)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// resourceLabel extracts the leading path segment for metric labels, keeping
// label cardinality bounded (no record ids).
func resourceLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}
