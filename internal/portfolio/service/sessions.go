package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/cryptox"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionManager issues and resolves opaque session tokens. The raw token
// only ever travels in the cookie; the store sees its fingerprint.
type SessionManager struct {
	Sessions store.Sessions
	TTL      time.Duration
}

// ttl defaults only when unset: a negative TTL flows through so callers can
// mint already-expired sessions.
func (m *SessionManager) ttl() time.Duration {
	if m.TTL == 0 {
		return DefaultSessionTTL
	}
	return m.TTL
}

// Issue creates a new session for the user and returns the raw token to be
// set as the cookie value.
func (m *SessionManager) Issue(ctx context.Context, userID string) (string, domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now().UTC()
	sess := domain.Session{
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl()),
		CreatedAt: now,
	}
	if err := m.Sessions.CreateSession(ctx, sess); err != nil {
		return "", domain.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return token, sess, nil
}

// Resolve maps a raw cookie token back to its session. Expired or unknown
// tokens come back as store.ErrNotFound.
func (m *SessionManager) Resolve(ctx context.Context, token string) (domain.Session, error) {
	return m.Sessions.GetSession(ctx, cryptox.FingerprintToken(token))
}

// Destroy removes the session behind a raw token. Safe to call for tokens
// that no longer resolve.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	return m.Sessions.DeleteSession(ctx, cryptox.FingerprintToken(token))
}

// DestroyUserSessions revokes every session of a user. When exceptToken is
// non-empty that session survives (used by change-password to keep the
// caller logged in).
func (m *SessionManager) DestroyUserSessions(ctx context.Context, userID, exceptToken string) error {
	except := ""
	if exceptToken != "" {
		except = cryptox.FingerprintToken(exceptToken)
	}
	return m.Sessions.DeleteUserSessions(ctx, userID, except)
}
