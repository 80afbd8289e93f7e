package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/internal/portfolio/store/drivers/sqlite"
)

func newTestAuth(t *testing.T) (*AuthService, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	sessions := &SessionManager{Sessions: st.Sessions()}
	auth := &AuthService{
		Store:     st,
		Sessions:  sessions,
		TwoFactor: &TwoFactorService{Issuer: "PortfolioTest"},
	}
	return auth, st
}

func totpCode(t *testing.T, secret string, at time.Time) string {
	t.Helper()
	code, err := totp.GenerateCodeCustom(secret, at, totp.ValidateOpts{
		Period:    30,
		Skew:      2,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)
	return code
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	t.Run("creates user with normalized email", func(t *testing.T) {
		user, err := auth.Register(ctx, "  Alice@Example.COM ", "password123", "Alice")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", user.Email)
		require.NotEmpty(t, user.ID)
		require.NotEqual(t, "password123", user.PasswordHash)
		require.False(t, user.TwoFactorEnabled)
	})

	t.Run("rejects duplicate email regardless of case", func(t *testing.T) {
		_, err := auth.Register(ctx, "ALICE@example.com", "password123", "Alice Again")
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := auth.Register(ctx, "bob@example.com", "short", "Bob")
		require.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	registered, err := auth.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		user, err := auth.Login(ctx, "alice@example.com", "password123", "")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("mixed-case email still matches", func(t *testing.T) {
		_, err := auth.Login(ctx, "Alice@Example.com", "password123", "")
		require.NoError(t, err)
	})

	t.Run("wrong password yields the generic error", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice@example.com", "wrongpassword", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same generic error", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody@example.com", "password123", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestTwoFactorFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, st := newTestAuth(t)

	user, err := auth.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	enrollment, err := auth.EnrollTwoFactor(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.QRCode, "data:image/png;base64,")
	require.Equal(t, enrollment.Secret, enrollment.ManualEntryKey)

	t.Run("enroll persists nothing", func(t *testing.T) {
		fresh, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, fresh.TwoFactorEnabled)
		require.Nil(t, fresh.TwoFactorSecret)
	})

	t.Run("confirm with a bad code mutates nothing", func(t *testing.T) {
		err := auth.ConfirmTwoFactor(ctx, user.ID, enrollment.Secret, "000000")
		require.ErrorIs(t, err, ErrInvalidToken)

		fresh, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, fresh.TwoFactorEnabled)
	})

	t.Run("confirm with a valid code enables 2FA", func(t *testing.T) {
		code := totpCode(t, enrollment.Secret, time.Now())
		require.NoError(t, auth.ConfirmTwoFactor(ctx, user.ID, enrollment.Secret, code))

		fresh, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.True(t, fresh.TwoFactorEnabled)
		require.NotNil(t, fresh.TwoFactorSecret)
		require.Equal(t, enrollment.Secret, *fresh.TwoFactorSecret)
	})

	t.Run("login without code now requires step-up", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice@example.com", "password123", "")
		require.ErrorIs(t, err, ErrTwoFactorRequired)
	})

	t.Run("step-up still re-verifies the password", func(t *testing.T) {
		code := totpCode(t, enrollment.Secret, time.Now())
		_, err := auth.Login(ctx, "alice@example.com", "wrongpassword", code)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("bad code is rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice@example.com", "password123", "123456")
		require.ErrorIs(t, err, ErrInvalidTwoFactorCode)
	})

	t.Run("codes within two steps of now are accepted", func(t *testing.T) {
		code := totpCode(t, enrollment.Secret, time.Now().Add(-60*time.Second))
		user, err := auth.Login(ctx, "alice@example.com", "password123", code)
		require.NoError(t, err)
		require.True(t, user.TwoFactorEnabled)
	})

	t.Run("codes three steps away are rejected", func(t *testing.T) {
		// 90s is exactly three 30s steps back, one past the skew window.
		code := totpCode(t, enrollment.Secret, time.Now().Add(-90*time.Second))
		_, err := auth.Login(ctx, "alice@example.com", "password123", code)
		require.ErrorIs(t, err, ErrInvalidTwoFactorCode)
	})

	t.Run("disable clears the secret and the flag", func(t *testing.T) {
		require.NoError(t, auth.DisableTwoFactor(ctx, user.ID))

		fresh, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, fresh.TwoFactorEnabled)
		require.Nil(t, fresh.TwoFactorSecret)

		_, err = auth.Login(ctx, "alice@example.com", "password123", "")
		require.NoError(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	user, err := auth.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	keepToken, _, err := auth.Sessions.Issue(ctx, user.ID)
	require.NoError(t, err)
	otherToken, _, err := auth.Sessions.Issue(ctx, user.ID)
	require.NoError(t, err)

	t.Run("wrong current password leaves the hash alone", func(t *testing.T) {
		err := auth.ChangePassword(ctx, user.ID, "wrongpassword", "newpassword1", keepToken)
		require.ErrorIs(t, err, ErrWrongPassword)

		_, err = auth.Login(ctx, "alice@example.com", "password123", "")
		require.NoError(t, err)
	})

	t.Run("success revokes other sessions but keeps the current one", func(t *testing.T) {
		require.NoError(t, auth.ChangePassword(ctx, user.ID, "password123", "newpassword1", keepToken))

		_, err := auth.Sessions.Resolve(ctx, keepToken)
		require.NoError(t, err)
		_, err = auth.Sessions.Resolve(ctx, otherToken)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = auth.Login(ctx, "alice@example.com", "newpassword1", "")
		require.NoError(t, err)
		_, err = auth.Login(ctx, "alice@example.com", "password123", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _ := newTestAuth(t)

	alice, err := auth.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "bob@example.com", "password123", "Bob")
	require.NoError(t, err)

	strPtr := func(s string) *string { return &s }

	t.Run("updates name only", func(t *testing.T) {
		updated, err := auth.UpdateProfile(ctx, alice.ID, strPtr("Alice Smith"), nil)
		require.NoError(t, err)
		require.Equal(t, "Alice Smith", updated.Name)
		require.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("rejects an email someone else holds", func(t *testing.T) {
		_, err := auth.UpdateProfile(ctx, alice.ID, nil, strPtr("bob@example.com"))
		require.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("re-submitting one's own email is a no-op", func(t *testing.T) {
		updated, err := auth.UpdateProfile(ctx, alice.ID, nil, strPtr("Alice@Example.com"))
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("changes email when free", func(t *testing.T) {
		updated, err := auth.UpdateProfile(ctx, alice.ID, nil, strPtr("alice.smith@example.com"))
		require.NoError(t, err)
		require.Equal(t, "alice.smith@example.com", updated.Email)

		_, err = auth.Login(ctx, "alice.smith@example.com", "password123", "")
		require.NoError(t, err)
	})
}
