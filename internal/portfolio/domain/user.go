package domain

import "time"

// User is the credential + profile record. Email is unique (stored lower
// case); TwoFactorSecret set with TwoFactorEnabled false is an unconfirmed
// enrollment and never gates login.
type User struct {
	ID               string
	Email            string
	Name             string
	PasswordHash     string  // bcrypt encoded
	TwoFactorSecret  *string // TOTP secret (nullable, base32 encoded)
	TwoFactorEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublicUser is the only user shape ever serialized outward. The password
// hash and TOTP secret stay server-side.
type PublicUser struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// Public projects the externally visible profile fields.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		TwoFactorEnabled: u.TwoFactorEnabled,
	}
}
