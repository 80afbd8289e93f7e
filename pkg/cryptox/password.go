package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor. 12 keeps verification well
// under 100ms on current hardware while remaining expensive offline.
const PasswordHashCost = 12

// HashPassword generates a salted bcrypt hash of the given password. The
// returned string is self-describing (algorithm, cost and salt are embedded).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A malformed stored hash is treated the same as a mismatch: the caller only
// ever learns "does not match". bcrypt's comparison is constant time with
// respect to the stored hash.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
