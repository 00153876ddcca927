// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

// Package store holds the per-domain state caches. Each store wraps its
// resource client(s), keeps a mutex-guarded cache, and exposes Bind to
// register reconciliation handlers on the realtime session.
//
// Reconciliation handlers run on the session's read goroutine and refetch
// synchronously; the backend pushes change announcements, not full state, so
// the HTTP API stays authoritative. The only in-place mutations are the ones
// whose events carry the complete record (overtime alerts) or where the
// store itself made the change (CRUD results).
package store
