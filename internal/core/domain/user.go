package domain

import (
	"errors"
	"strings"
	"time"
)

// Sentinels applied by the auth core when optional fields are absent.
const (
	NoUsername = "No username"
	NoRole     = "No role"
)

// TokenTTL is the fixed validity window of an issued access token.
// Expiry is the only lifecycle event; there is no refresh or revocation.
const TokenTTL = 2 * time.Hour

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrSecretKeyMissing = errors.New("secret key is not configured")

// User models a registered account. PasswordHash is the bcrypt digest of
// the password supplied at registration; the plaintext is never stored.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeUsername lowercases and trims a username. Every uniqueness
// check and login lookup goes through this, so "  Alice " and "alice"
// resolve to the same identity.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ClaimRole returns the role embedded in token claims: the stored role,
// or the NoRole sentinel when the account has none.
func (u *User) ClaimRole() string {
	if u.Role == "" {
		return NoRole
	}
	return u.Role
}
