package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientSession binds a browser to the bearer token issued by the
// backend at login. The token is written once here and read by every
// authenticated gateway call; it is never mutated mid-flow.
type ClientSession struct {
	ID        uuid.UUID
	Token     string
	IsAdmin   bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *ClientSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
