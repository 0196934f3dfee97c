// Package creds owns the persisted credential: an opaque bearer token plus
// its expiry. The credential is never mutated in place, only replaced or
// cleared.
package creds

import (
	"context"
	"time"
)

// Credential proves an authenticated session to the backend.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Valid reports whether the credential exists and has not expired at now.
func (c *Credential) Valid(now time.Time) bool {
	return c != nil && c.Token != "" && now.Before(c.ExpiresAt)
}

// Store persists at most one credential under a fixed key.
//
// Contract:
//   - Get returns (nil, nil) when no credential is stored.
//   - Set overwrites any previous value.
//   - Clear is idempotent.
type Store interface {
	Get(ctx context.Context) (*Credential, error)
	Set(ctx context.Context, c Credential) error
	Clear(ctx context.Context) error
}
