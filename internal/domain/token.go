package domain

import "time"

// Token is an opaque session credential. Presence implies an authenticated
// session; the string carries no internally verified structure beyond being
// non-empty.
type Token string

// IssuedToken bundles a freshly issued token with its computed expiry.
// The expiry is informational only; no component enforces it.
type IssuedToken struct {
	Token     Token     `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
