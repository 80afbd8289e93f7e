package service

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/tech2saini/portfolio/pkg/mailx"
)

// captureMailer hands sent messages to the test over a channel.
type captureMailer struct {
	sent chan mailx.Message
}

func (m *captureMailer) Send(_ context.Context, msg mailx.Message) error {
	m.sent <- msg
	return nil
}

var resetLinkRe = regexp.MustCompile(`token=([A-Za-z0-9_-]+)`)

func newTestResets(t *testing.T) (*PasswordResetService, *AuthService, *captureMailer) {
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
	mailer := &captureMailer{sent: make(chan mailx.Message, 1)}
	resets := &PasswordResetService{
		Store:    st,
		Sessions: sessions,
		Mailer:   mailer,
		Logger:   slog.Default(),
		BaseURL:  "http://localhost:8080",
	}
	return resets, auth, mailer
}

func tokenFromMail(t *testing.T, mailer *captureMailer) string {
	t.Helper()
	select {
	case msg := <-mailer.sent:
		m := resetLinkRe.FindStringSubmatch(msg.Body)
		require.Len(t, m, 2, "reset email should carry a token link")
		token, err := url.QueryUnescape(m[1])
		require.NoError(t, err)
		return token
	case <-time.After(5 * time.Second):
		t.Fatal("no reset email sent")
		return ""
	}
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	resets, auth, mailer := newTestResets(t)

	user, err := auth.Register(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	sessionToken, _, err := auth.Sessions.Issue(ctx, user.ID)
	require.NoError(t, err)

	t.Run("unknown email is a silent no-op", func(t *testing.T) {
		require.NoError(t, resets.Request(ctx, "nobody@example.com"))
		select {
		case <-mailer.sent:
			t.Fatal("no email should be sent for unknown addresses")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("known email receives a working token", func(t *testing.T) {
		require.NoError(t, resets.Request(ctx, "alice@example.com"))
		token := tokenFromMail(t, mailer)

		require.NoError(t, resets.Reset(ctx, token, "newpassword1"))

		_, err := auth.Login(ctx, "alice@example.com", "newpassword1", "")
		require.NoError(t, err)
		_, err = auth.Login(ctx, "alice@example.com", "password123", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		t.Run("reset revokes all sessions", func(t *testing.T) {
			_, err := auth.Sessions.Resolve(ctx, sessionToken)
			require.ErrorIs(t, err, store.ErrNotFound)
		})

		t.Run("token is single use", func(t *testing.T) {
			err := resets.Reset(ctx, token, "anotherpassword1")
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		require.ErrorIs(t, resets.Reset(ctx, "not-a-real-token", "whatever123"), ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		resets.TokenTTL = -1 * time.Minute
		require.NoError(t, resets.Request(ctx, "alice@example.com"))
		token := tokenFromMail(t, mailer)
		resets.TokenTTL = 0

		require.ErrorIs(t, resets.Reset(ctx, token, "expiredpass1"), ErrInvalidToken)
	})

	t.Run("short new password is rejected before token lookup", func(t *testing.T) {
		require.ErrorIs(t, resets.Reset(ctx, "anything", "short"), ErrPasswordTooShort)
	})
}
