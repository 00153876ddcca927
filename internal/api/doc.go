// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

// Package api provides one typed client per backend resource. Every client
// wraps the shared transport.Client, so authentication, circuit breaking,
// rate limiting and error mapping are uniform across resources.
package api
