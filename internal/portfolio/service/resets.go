package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/cryptox"
	"github.com/tech2saini/portfolio/pkg/idx"
	"github.com/tech2saini/portfolio/pkg/mailx"
)

const DefaultResetTokenTTL = 1 * time.Hour

// PasswordResetService issues single-use reset tokens and redeems them.
// Tokens are stored as fingerprints; the raw token only appears in the
// email link.
type PasswordResetService struct {
	Store    store.Store
	Sessions *SessionManager
	Mailer   mailx.Mailer
	Logger   *slog.Logger

	TokenTTL time.Duration
	// BaseURL is the public origin used to build the reset link, e.g.
	// "https://example.com".
	BaseURL string
}

// ttl defaults only when unset: a negative TokenTTL flows through so callers
// can mint already-expired tokens.
func (s *PasswordResetService) ttl() time.Duration {
	if s.TokenTTL == 0 {
		return DefaultResetTokenTTL
	}
	return s.TokenTTL
}

// Request issues a reset token for the account behind email, if one exists.
// It never reports whether the email matched; unknown addresses are a
// silent no-op so the endpoint cannot be used for enumeration.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	now := time.Now().UTC()
	pr := domain.PasswordReset{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}
	if err := s.Store.PasswordResets().CreatePasswordReset(ctx, pr); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	// Delivery happens off the request path; a mail failure must not leak
	// through the generic response.
	go func() {
		msg := mailx.Message{
			To:      user.Email,
			Subject: "Password reset",
			Body: fmt.Sprintf(
				"A password reset was requested for your account.\n\n"+
					"Reset link: %s/reset-password?token=%s\n\n"+
					"The link expires in %s. If you did not request this, ignore this email.",
				s.BaseURL, token, s.ttl()),
		}
		if err := s.Mailer.Send(context.Background(), msg); err != nil {
			s.Logger.Error("failed to send reset email", "error", err)
		}
	}()

	return nil
}

// Reset redeems a token. It rejects unknown, expired, and already-used
// tokens, re-hashes the password, marks the token spent, and revokes every
// session of the user.
func (s *PasswordResetService) Reset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	pr, err := s.Store.PasswordResets().GetPasswordReset(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	now := time.Now().UTC()
	if !pr.Usable(now) {
		return ErrInvalidToken
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, pr.UserID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.Store.PasswordResets().MarkPasswordResetUsed(ctx, pr.ID, now); err != nil {
		return fmt.Errorf("failed to mark token used: %w", err)
	}

	// Anyone holding an old session loses it.
	if err := s.Sessions.DestroyUserSessions(ctx, pr.UserID, ""); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}
