// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"github.com/goccy/go-json"

	"github.com/roomline/roomline-go/internal/logging"
	"github.com/roomline/roomline-go/internal/models"
	"github.com/roomline/roomline-go/internal/transport"
)

// errMessage maps a request failure to the message a store surfaces. API
// errors carry the backend's detail string verbatim; transport failures get
// the store's generic fallback.
func errMessage(err error, fallback string) string {
	if detail := transport.Detail(err); detail != "" {
		return detail
	}
	return fallback
}

// unmarshalEvent decodes an envelope payload. Malformed payloads are logged
// and skipped; the feed keeps running.
func unmarshalEvent(env models.Envelope, v any) error {
	if err := json.Unmarshal(env.Data, v); err != nil {
		logging.Error().Err(err).Str("event", env.Event).Msg("Malformed event payload")
		return err
	}
	return nil
}

// unbindAll composes unsubscribe funcs into one.
func unbindAll(unsubs []func()) func() {
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
