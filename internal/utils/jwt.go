package utils // package utils provides helper functions for token issuing, hashing and OTP generation

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Sentinel errors returned by ParseAccessToken.  Callers use them to
// give distinct guidance: an expired token means "log in again", an
// invalid one means the token was malformed or tampered with.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string; Exp stores the UTC
// expiration time.  Tokens are bearer capabilities: nothing is kept
// server-side, validity is entirely signature + expiry at parse time.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID and a TTL in hours.  The JWT carries the
// standard claims: subject (sub), expiration (exp) and issued at (iat).
func NewAccessToken(secret string, userID uint64, ttlHours int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a serialized
// token and returns the subject user ID.  Only HMAC-signed tokens are
// accepted; a token announcing any other algorithm is rejected as
// invalid, which defends against algorithm-substitution attacks.
// Expiry is reported as ErrTokenExpired so callers can distinguish a
// stale session from a tampered token; every other failure, including
// a missing or unparsable subject claim, maps to ErrTokenInvalid.
func ParseAccessToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !tok.Valid {
		return 0, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	// Numeric JSON values decode as float64; some issuers stringify.
	switch sub := claims["sub"].(type) {
	case float64:
		return uint64(sub), nil
	case string:
		if id, perr := strconv.ParseUint(sub, 10, 64); perr == nil {
			return id, nil
		}
	}
	return 0, ErrTokenInvalid
}
