package utils

import (
	"crypto/rand" // secure random number generation
	"fmt"
	"math/big"
)

// GenerateOTP returns a uniformly random 6-digit numeric code in the
// range "000000"–"999999", leading zeros preserved.  crypto/rand is
// mandatory here: the code guards a password reset and must not be
// guessable within its validity window.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
