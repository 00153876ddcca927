// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/roomline/roomline-go/internal/models"
)

// Credentials is the persisted session: the bearer token and the user it
// belongs to.
type Credentials struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// CredentialsFile persists the session across restarts as a single JSON
// file with owner-only permissions.
type CredentialsFile struct {
	path string
}

// NewCredentialsFile creates a store writing credentials.json under dir.
func NewCredentialsFile(dir string) *CredentialsFile {
	return &CredentialsFile{path: filepath.Join(dir, "credentials.json")}
}

// Path returns the backing file path.
func (c *CredentialsFile) Path() string {
	return c.path
}

// Load reads the persisted credentials. A missing file returns (nil, nil).
func (c *CredentialsFile) Load() (*Credentials, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return &creds, nil
}

// Save writes the credentials with 0600 permissions, creating the state
// directory if needed.
func (c *CredentialsFile) Save(creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Remove deletes the persisted credentials. A missing file is not an error.
func (c *CredentialsFile) Remove() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
