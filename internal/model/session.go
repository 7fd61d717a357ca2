package model

import "time"

// SessionTTL is how long a session token stays valid after login.
const SessionTTL = 7 * 24 * time.Hour

// UserSession maps an opaque session token to its owning user. Expired
// rows are treated as invalid on lookup; there is no active sweep.
type UserSession struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	SessionToken string    `json:"session_token" gorm:"uniqueIndex;size:512;not null"`
	UserID       string    `json:"user_id" gorm:"index;size:64;not null"`
	ExpiresAt    time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired reports whether the session has passed its expiry. Comparison
// happens in UTC; naive timestamps from the store are treated as UTC.
func (s *UserSession) Expired(now time.Time) bool {
	return now.UTC().After(s.ExpiresAt.UTC())
}
