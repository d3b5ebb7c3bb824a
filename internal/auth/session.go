package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/postpilot/postpilot/internal/db"
)

// Session is the caller identity attached to a request. The zero value is an
// anonymous visitor.
type Session struct {
	UserID uuid.UUID
	Tier   string
}

// Anonymous reports whether no user is signed in.
func (s Session) Anonymous() bool {
	return s.UserID == uuid.Nil
}

// CanViewPremium reports whether the session unlocks premium postings.
func (s Session) CanViewPremium() bool {
	return !s.Anonymous() && s.Tier == db.TierPremium
}

type sessionKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session in ctx, or the anonymous session.
func SessionFrom(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey{}).(Session)
	return s
}
