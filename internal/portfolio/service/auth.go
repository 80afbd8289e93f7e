package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/cryptox"
	"github.com/tech2saini/portfolio/pkg/idx"
)

const MinPasswordLength = 8

var (
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTwoFactorRequired    = errors.New("two-factor code required")
	ErrInvalidTwoFactorCode = errors.New("invalid 2FA code")
	ErrInvalidToken         = errors.New("invalid token")
	ErrWrongPassword        = errors.New("current password is incorrect")
	ErrEmailInUse           = errors.New("email already in use")
	ErrPasswordTooShort     = errors.New("password too short")
)

type AuthService struct {
	Store     store.Store
	Sessions  *SessionManager
	TwoFactor *TwoFactorService
}

// NormalizeEmail lower-cases and trims an email so uniqueness checks and
// lookups always see the same form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. The email must be unused and the password
// at least MinPasswordLength characters.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	email = NormalizeEmail(email)
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrPasswordTooShort
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login authenticates an email/password pair. When the account has 2FA
// enabled and no code is supplied it returns ErrTwoFactorRequired without
// creating a session; the password is re-verified on every attempt, so the
// step-up carries no server-side state.
func (s *AuthService) Login(ctx context.Context, email, password, twoFactorCode string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if twoFactorCode == "" {
			return domain.User{}, ErrTwoFactorRequired
		}
		if user.TwoFactorSecret == nil || !s.TwoFactor.ValidateCode(*user.TwoFactorSecret, twoFactorCode) {
			return domain.User{}, ErrInvalidTwoFactorCode
		}
	}

	return user, nil
}

// CurrentUser loads the account behind a resolved session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// EnrollTwoFactor generates setup material for the user. Nothing is stored;
// the client must echo the secret back through ConfirmTwoFactor.
func (s *AuthService) EnrollTwoFactor(ctx context.Context, userID string) (TwoFactorEnrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return TwoFactorEnrollment{}, fmt.Errorf("failed to load user: %w", err)
	}
	return s.TwoFactor.Enroll(user.Email)
}

// ConfirmTwoFactor validates the first code against the candidate secret and
// only then persists it. A bad code leaves the account untouched.
func (s *AuthService) ConfirmTwoFactor(ctx context.Context, userID, secret, code string) error {
	if secret == "" || !s.TwoFactor.ValidateCode(secret, code) {
		return ErrInvalidToken
	}
	if err := s.Store.Users().EnableTwoFactor(ctx, userID, secret); err != nil {
		return fmt.Errorf("failed to enable 2FA: %w", err)
	}
	return nil
}

// DisableTwoFactor clears the secret and the flag.
func (s *AuthService) DisableTwoFactor(ctx context.Context, userID string) error {
	if err := s.Store.Users().DisableTwoFactor(ctx, userID); err != nil {
		return fmt.Errorf("failed to disable 2FA: %w", err)
	}
	return nil
}

// ChangePassword verifies the current password, stores a new hash, and
// revokes every other session of the user. The session behind currentToken
// stays alive so the caller is not logged out by their own change.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword, currentToken string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if !cryptox.VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.Sessions.DestroyUserSessions(ctx, userID, currentToken); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}

// UpdateProfile applies optional name and email changes. An email change is
// checked for uniqueness excluding the user themselves, so re-submitting
// one's own email is a no-op rather than a conflict.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, name, email *string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}

	newName := user.Name
	if name != nil {
		newName = *name
	}

	newEmail := user.Email
	if email != nil {
		candidate := NormalizeEmail(*email)
		if candidate != user.Email {
			_, err := s.Store.Users().GetUserByEmail(ctx, candidate)
			switch {
			case err == nil:
				return domain.User{}, ErrEmailInUse
			case !errors.Is(err, store.ErrNotFound):
				return domain.User{}, fmt.Errorf("failed to check email: %w", err)
			}
		}
		newEmail = candidate
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, newName, newEmail); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailInUse
		}
		return domain.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.Store.Users().GetUserByID(ctx, userID)
}
