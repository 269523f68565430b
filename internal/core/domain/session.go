package domain

import (
	"errors"
	"time"
)

var ErrUnauthenticated = errors.New("authentication required")
var ErrMalformedCredential = errors.New("malformed authorization header")
var ErrSessionExpired = errors.New("session expired")
var ErrSessionNotFound = errors.New("session not found")
var ErrDuplicateToken = errors.New("session token already exists")

// Session binds an opaque bearer token to a user with an expiry. Expired
// sessions are never purged; they fail lazily at resolution time.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}
