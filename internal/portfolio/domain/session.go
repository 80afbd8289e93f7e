package domain

import "time"

// Session maps an opaque browser token to a user. Only the SHA-256
// fingerprint of the token is stored; the raw value lives in the cookie.
// Expiry is enforced at read time, so a stale row that was never evicted
// still fails lookup.
type Session struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session has passed its expiry at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// PasswordReset is a durable single-use password-reset token, keyed by the
// fingerprint of the opaque token mailed to the user.
type PasswordReset struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Usable reports whether the reset token can still be redeemed.
func (p PasswordReset) Usable(now time.Time) bool {
	return p.UsedAt == nil && now.Before(p.ExpiresAt)
}
