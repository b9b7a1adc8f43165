package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storelane/ecommerce-api/internal/core/domain"
	"github.com/storelane/ecommerce-api/internal/core/ports"
)

// JWTIssuer implements ports.TokenIssuer with HMAC-SHA-256 signed JWTs.
// The secret is injected at construction; there is no ambient global
// key, so tests can run issuers with distinct secrets side by side.
type JWTIssuer struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer creates an issuer signing with secret and a validity
// window of ttl. A non-positive ttl falls back to domain.TokenTTL.
func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = domain.TokenTTL
	}
	return &JWTIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock overrides the issuer's clock. Intended for tests that need
// a deterministic expiry.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	i.now = now
	return i
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// Issue signs the claims with expiry = now + ttl (UTC). An unset secret
// is a deployment defect, not a user-input failure, and surfaces as
// domain.ErrSecretKeyMissing.
func (i *JWTIssuer) Issue(claims ports.TokenClaims) (string, error) {
	if strings.TrimSpace(i.secret) == "" {
		return "", domain.ErrSecretKeyMissing
	}

	payload := jwt.MapClaims{
		"id":       strconv.FormatInt(claims.UserID, 10),
		"username": claims.Username,
		"role":     claims.Role,
		"exp":      i.now().UTC().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return t.SignedString([]byte(i.secret))
}
