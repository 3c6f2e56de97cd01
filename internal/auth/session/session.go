package session

import (
	"context"
	"time"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/domain"
)

// Session is the server-side state behind one issued token.
type Session struct {
	Token     string           `json:"token"`
	Principal domain.Principal `json:"principal"`
	ExpiresAt time.Time        `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists token -> session mappings. Implementations must be safe for
// concurrent use and must treat expired entries as absent on Get, regardless
// of any background sweeping.
type Store interface {
	Put(ctx context.Context, sess *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// Pruner is implemented by stores that need periodic cleanup of expired
// entries. Stores with native TTL support (Redis) do not.
type Pruner interface {
	PruneExpired(ctx context.Context) (int, error)
}
