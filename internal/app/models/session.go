package models

import "time"

// Session is the decoded content of a verified session token.
type Session struct {
	SessionID string
	UserID    string
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s *Session) RemainingLifetime(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
