package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("super-secret", 42, 24)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}
	if remaining := time.Until(tok.Exp); remaining < 23*time.Hour {
		t.Fatalf("expiry too close: %v remaining", remaining)
	}

	uid, err := ParseAccessToken("super-secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if uid != 42 {
		t.Fatalf("subject mismatch: got %d want 42", uid)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 7, -1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = ParseAccessToken("secret", tok.Token)
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseAccessToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 7, 24)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	// Flip a character in the signature segment.  This must surface as
	// an invalid token, never as expired.
	parts := strings.Split(tok.Token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok.Token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	_, err = ParseAccessToken("secret", strings.Join(parts, "."))
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("right-secret", 7, 24)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	_, err = ParseAccessToken("wrong-secret", tok.Token)
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseAccessToken("k", "not.a.jwt")
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseAccessToken_MissingSubject(t *testing.T) {
	t.Parallel()

	// A validly signed token without a usable sub claim is rejected.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	_, err = ParseAccessToken("secret", raw)
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseAccessToken_StringSubject(t *testing.T) {
	t.Parallel()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "99",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	uid, err := ParseAccessToken("secret", raw)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if uid != 99 {
		t.Fatalf("subject mismatch: got %d want 99", uid)
	}
}
