// Package redis implements the session repository on Redis. Sessions expire
// via key TTLs, so a Redis-backed deployment gets expiry without the
// housekeeping sweep the SQL drivers need.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
)

const (
	sessionKeyPrefix = "session:"
	userIndexPrefix  = "user_sessions:"
)

type Sessions struct {
	rdb redis.UniversalClient
}

func NewSessions(rdb redis.UniversalClient) *Sessions {
	return &Sessions{rdb: rdb}
}

type sessionBlob struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func sessionKey(tokenHash string) string { return sessionKeyPrefix + tokenHash }
func userIndexKey(userID string) string  { return userIndexPrefix + userID }

func (s *Sessions) CreateSession(ctx context.Context, sess domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	blob, err := json.Marshal(sessionBlob{
		UserID:    sess.UserID,
		ExpiresAt: sess.ExpiresAt,
		CreatedAt: sess.CreatedAt,
	})
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(sess.TokenHash), blob, ttl)
		pipe.SAdd(ctx, userIndexKey(sess.UserID), sess.TokenHash)
		return nil
	})
	return err
}

func (s *Sessions) GetSession(ctx context.Context, tokenHash string) (domain.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, store.ErrNotFound
		}
		return domain.Session{}, err
	}

	var blob sessionBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return domain.Session{}, err
	}

	sess := domain.Session{
		TokenHash: tokenHash,
		UserID:    blob.UserID,
		ExpiresAt: blob.ExpiresAt,
		CreatedAt: blob.CreatedAt,
	}
	if sess.Expired(time.Now().UTC()) {
		return domain.Session{}, store.ErrNotFound
	}
	return sess, nil
}

func (s *Sessions) DeleteSession(ctx context.Context, tokenHash string) error {
	raw, err := s.rdb.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	var blob sessionBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return s.rdb.Del(ctx, sessionKey(tokenHash)).Err()
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(tokenHash))
		pipe.SRem(ctx, userIndexKey(blob.UserID), tokenHash)
		return nil
	})
	return err
}

func (s *Sessions) DeleteUserSessions(ctx context.Context, userID, exceptTokenHash string) error {
	hashes, err := s.rdb.SMembers(ctx, userIndexKey(userID)).Result()
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, hash := range hashes {
			if hash == exceptTokenHash {
				continue
			}
			pipe.Del(ctx, sessionKey(hash))
			pipe.SRem(ctx, userIndexKey(userID), hash)
		}
		return nil
	})
	return err
}

// DeleteExpiredSessions prunes user index entries whose session keys have
// already been evicted by TTL. The sessions themselves need no sweep.
func (s *Sessions) DeleteExpiredSessions(ctx context.Context, _ time.Time) error {
	iter := s.rdb.Scan(ctx, 0, userIndexPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		indexKey := iter.Val()

		hashes, err := s.rdb.SMembers(ctx, indexKey).Result()
		if err != nil {
			return err
		}
		for _, hash := range hashes {
			exists, err := s.rdb.Exists(ctx, sessionKey(hash)).Result()
			if err != nil {
				return err
			}
			if exists == 0 {
				if err := s.rdb.SRem(ctx, indexKey, hash).Err(); err != nil {
					return err
				}
			}
		}
	}
	return iter.Err()
}
