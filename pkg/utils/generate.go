package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpSpan is the size of the 6-digit code space [100000, 999999].
var otpSpan = big.NewInt(900000)

// GenerateOTP returns a uniformly random 6-digit code. The first digit is
// never zero, so the string form always has exactly 6 characters. crypto/rand
// keeps codes unguessable within their validity window.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpan)
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
