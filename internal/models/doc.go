// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

// Package models defines the wire types exchanged with the Roomline backend:
// REST resource records and their create/update payloads, paginated list
// envelopes, and the realtime event envelope with its typed payloads.
//
// The backend is authoritative for every record. The client never constructs
// records locally except for pending notification placeholders, and performs
// no validation beyond type shape; invalid values are the server's to reject.
package models
