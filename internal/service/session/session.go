// Package session keeps the tracker's CycleProfile on the client side.
//
// The server stores nothing. The profile travels in a signed HMAC JWT that the
// client presents on every request; each state change returns a fresh token.
// When a token expires the session, and the profile inside it, is gone.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
)

// Session is the decoded content of a session token.
type Session struct {
	ID        uuid.UUID
	Profile   domain.CycleProfile
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// New starts a session with a fresh ID and the default profile.
func New() Session {
	return Session{ID: uuid.New(), Profile: domain.NewCycleProfile()}
}

// WithProfile returns a copy of s holding p.
func (s Session) WithProfile(p domain.CycleProfile) Session {
	s.Profile = p
	return s
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// Issue signs s. IssuedAt and ExpiresAt are set from the service clock;
	// the returned Session reflects them.
	Issue(ctx context.Context, s Session) (string, Session, error)

	// Parse verifies tokenString and returns the session it carries.
	Parse(ctx context.Context, tokenString string) (*Session, error)
}
