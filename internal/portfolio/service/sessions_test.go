package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/internal/portfolio/store/drivers/sqlite"
)

func newTestSessions(t *testing.T, userIDs ...string) *SessionManager {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	// Sessions reference users, so seed the accounts the test will use.
	now := time.Now().UTC()
	for _, id := range userIDs {
		require.NoError(t, st.Users().CreateUser(context.Background(), domain.User{
			ID:           id,
			Email:        id + "@example.com",
			Name:         id,
			PasswordHash: "x",
			CreatedAt:    now,
			UpdatedAt:    now,
		}))
	}

	return &SessionManager{Sessions: st.Sessions()}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions := newTestSessions(t, "user-1")

	token, sess, err := sessions.Issue(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEqual(t, token, sess.TokenHash, "raw token must not be stored")

	t.Run("resolves the raw token", func(t *testing.T) {
		got, err := sessions.Resolve(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "user-1", got.UserID)
	})

	t.Run("default TTL is seven days", func(t *testing.T) {
		require.WithinDuration(t, sess.CreatedAt.Add(7*24*time.Hour), sess.ExpiresAt, time.Second)
	})

	t.Run("destroy is idempotent", func(t *testing.T) {
		require.NoError(t, sessions.Destroy(ctx, token))
		require.NoError(t, sessions.Destroy(ctx, token))

		_, err := sessions.Resolve(ctx, token)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSessionExpiryEnforcedAtRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions := newTestSessions(t, "user-1")
	sessions.TTL = -1 * time.Minute // already expired on creation

	token, sess, err := sessions.Issue(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, sess.ExpiresAt.Before(time.Now()), "negative TTL must not fall back to the default")

	_, err = sessions.Resolve(ctx, token)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDestroyUserSessionsExcept(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions := newTestSessions(t, "user-1", "user-2")

	keep, _, err := sessions.Issue(ctx, "user-1")
	require.NoError(t, err)
	drop, _, err := sessions.Issue(ctx, "user-1")
	require.NoError(t, err)
	other, _, err := sessions.Issue(ctx, "user-2")
	require.NoError(t, err)

	require.NoError(t, sessions.DestroyUserSessions(ctx, "user-1", keep))

	_, err = sessions.Resolve(ctx, keep)
	require.NoError(t, err)
	_, err = sessions.Resolve(ctx, drop)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = sessions.Resolve(ctx, other)
	require.NoError(t, err, "other users' sessions are untouched")
}
