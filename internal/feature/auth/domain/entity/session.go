package entity

import "time"

// Session represents a user's authentication session.
// The token is an opaque value carried by the client in a cookie; the user
// fields are a snapshot taken at login so protected requests do not need a
// user lookup.
type Session struct {
	Token     string    // Opaque session token (64-character hex string)
	UserID    uint      // Associated user ID
	UserEmail string    // User's email at login time
	UserName  string    // User's display name at login time (may be empty)
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session has not expired.
func (s *Session) IsValid() bool {
	return !s.IsExpired()
}
