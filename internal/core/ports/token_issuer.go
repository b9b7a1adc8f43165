package ports

// TokenClaims is the identity fact set embedded in an access token.
// Role arrives already defaulted (domain.User.ClaimRole).
type TokenClaims struct {
	UserID   int64
	Username string
	Role     string
}

// TokenIssuer builds a signed, expiring access token. Any verifier
// holding the same secret can confirm authenticity and expiry without
// contacting the issuer.
type TokenIssuer interface {
	// Issue signs the claims with an expiry fixed at issuance time.
	// Returns domain.ErrSecretKeyMissing when no signing secret was
	// configured.
	Issue(claims TokenClaims) (string, error)
}
