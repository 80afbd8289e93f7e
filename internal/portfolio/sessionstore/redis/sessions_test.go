package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
)

func newTestSessions(t *testing.T) (*Sessions, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessions(client), mr
}

func testSession(userID, tokenHash string, ttl time.Duration) domain.Session {
	now := time.Now().UTC()
	return domain.Session{
		TokenHash: tokenHash,
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

func TestRedisSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	sessions, _ := newTestSessions(t)

	sess := testSession("user-1", "hash-1", time.Hour)
	require.NoError(t, sessions.CreateSession(ctx, sess))

	got, err := sessions.GetSession(ctx, "hash-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", got.UserID)
	require.Equal(t, "hash-1", got.TokenHash)
	require.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)

	t.Run("unknown hash is not found", func(t *testing.T) {
		_, err := sessions.GetSession(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRedisSessionExpiry(t *testing.T) {
	ctx := context.Background()
	sessions, mr := newTestSessions(t)

	require.NoError(t, sessions.CreateSession(ctx, testSession("user-1", "hash-1", time.Hour)))

	mr.FastForward(2 * time.Hour)

	_, err := sessions.GetSession(ctx, "hash-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedisDeleteSession(t *testing.T) {
	ctx := context.Background()
	sessions, _ := newTestSessions(t)

	require.NoError(t, sessions.CreateSession(ctx, testSession("user-1", "hash-1", time.Hour)))
	require.NoError(t, sessions.DeleteSession(ctx, "hash-1"))

	_, err := sessions.GetSession(ctx, "hash-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	t.Run("deleting again is not an error", func(t *testing.T) {
		require.NoError(t, sessions.DeleteSession(ctx, "hash-1"))
	})
}

func TestRedisDeleteUserSessions(t *testing.T) {
	ctx := context.Background()
	sessions, _ := newTestSessions(t)

	require.NoError(t, sessions.CreateSession(ctx, testSession("user-1", "keep", time.Hour)))
	require.NoError(t, sessions.CreateSession(ctx, testSession("user-1", "drop", time.Hour)))
	require.NoError(t, sessions.CreateSession(ctx, testSession("user-2", "other", time.Hour)))

	require.NoError(t, sessions.DeleteUserSessions(ctx, "user-1", "keep"))

	_, err := sessions.GetSession(ctx, "keep")
	require.NoError(t, err)
	_, err = sessions.GetSession(ctx, "drop")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = sessions.GetSession(ctx, "other")
	require.NoError(t, err)

	t.Run("empty except removes everything", func(t *testing.T) {
		require.NoError(t, sessions.DeleteUserSessions(ctx, "user-1", ""))
		_, err := sessions.GetSession(ctx, "keep")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRedisIndexPruning(t *testing.T) {
	ctx := context.Background()
	sessions, mr := newTestSessions(t)

	require.NoError(t, sessions.CreateSession(ctx, testSession("user-1", "hash-1", time.Hour)))
	mr.FastForward(2 * time.Hour)

	// The session key is gone via TTL; the sweep clears the index entry.
	require.NoError(t, sessions.DeleteExpiredSessions(ctx, time.Now().UTC()))

	members, err := sessions.rdb.SMembers(ctx, userIndexKey("user-1")).Result()
	require.NoError(t, err)
	require.Empty(t, members)
}
