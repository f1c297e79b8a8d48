package models

import "time"

// Session maps an opaque token to a principal. Rows are owned exclusively by
// the session repository; expired rows are inert until lazily evicted.
type Session struct {
	SessionID string    `json:"session_id" db:"session_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	UserType  UserRole  `json:"user_type" db:"user_type"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
