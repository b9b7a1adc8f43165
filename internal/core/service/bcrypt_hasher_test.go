package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	for _, password := range []string{"a", "s3cret", "correct horse battery staple", "пароль"} {
		hash, err := hasher.Hash(password)
		if err != nil {
			t.Fatalf("Hash(%q) error: %v", password, err)
		}
		if hash == password {
			t.Fatalf("hash equals plaintext")
		}
		if !hasher.Verify(password, hash) {
			t.Fatalf("Verify(%q, Hash(%q)) = false", password, password)
		}
		if hasher.Verify(password+"x", hash) {
			t.Fatalf("Verify accepted wrong password")
		}
	}
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-hash", "$2a$xx$garbage"} {
		if hasher.Verify("whatever", malformed) {
			t.Fatalf("Verify accepted malformed hash %q", malformed)
		}
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(9999)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", hasher.cost)
	}
}
