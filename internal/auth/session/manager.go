package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/domain"
)

// Manager owns the session lifecycle: issuing tokens, resolving them back to
// a principal, and tearing them down.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Create issues a fresh opaque token bound to the principal, valid for the
// configured TTL. There is no sliding expiry.
func (m *Manager) Create(ctx context.Context, principal domain.Principal) (string, error) {
	token := uuid.NewString()
	sess := &Session{
		Token:     token,
		Principal: principal,
		ExpiresAt: m.now().Add(m.ttl),
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token to its principal. Expired or unknown tokens yield
// domain.ErrSessionNotFound.
func (m *Manager) Lookup(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}
	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	principal := sess.Principal
	return &principal, nil
}

// Destroy removes the session. Destroying an absent token is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// TTL reports the configured session lifetime, used by the HTTP layer to set
// the cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
