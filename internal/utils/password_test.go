package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatal("expected verify to succeed for the original password")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("expected verify to fail for a different password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-input", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
	if !VerifyPassword(h1, "same-input") || !VerifyPassword(h2, "same-input") {
		t.Fatal("both digests must verify against the original password")
	}
}

func TestHashPassword_RaisesTinyCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-digest", "anything") {
		t.Fatal("malformed digest must not verify")
	}
	if VerifyPassword("", "anything") {
		t.Fatal("empty digest must not verify")
	}
}
