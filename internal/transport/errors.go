// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// maxErrorBodySize limits how much of an error response body is read.
// This prevents unbounded memory allocation on large error responses.
const maxErrorBodySize = 64 * 1024 // 64KB

// APIError is a non-2xx response from the backend. Detail carries the
// server's `detail` message verbatim; the client never reinterprets it.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Detail extracts the server-provided detail string from err, or "" when err
// is not an APIError. Stores surface this verbatim to the caller.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// errorDetail is the backend's FastAPI-style error envelope. Detail is
// usually a string but may be structured for validation errors.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

// parseAPIError builds an APIError from a non-2xx response body.
func parseAPIError(status int, body io.Reader) *APIError {
	raw := readBodyForError(body)

	var envelope errorDetail
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Detail) > 0 {
		// String detail is the common case; keep structured details raw.
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return &APIError{StatusCode: status, Detail: s}
		}
		return &APIError{StatusCode: status, Detail: string(envelope.Detail)}
	}

	return &APIError{StatusCode: status, Detail: string(raw)}
}

// readBodyForError reads at most maxErrorBodySize bytes for error reporting.
func readBodyForError(r io.Reader) []byte {
	limited := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}
