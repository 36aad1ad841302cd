package dto

import "time"

// TokenRequest payload for obtaining an access token.
type TokenRequest struct {
	Name string `json:"name"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
