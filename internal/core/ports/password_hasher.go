package ports

// PasswordHasher is a one-way salted hash with built-in verification.
// Hash embeds salt and cost factor in the output, so Verify needs no
// external state.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. It returns false,
	// never an error, for mismatched or malformed hashes.
	Verify(plaintext, hash string) bool
}
