package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the Node deployments used for both
// passwords and reset codes.
const bcryptCost = 12

// HashPassword hashes a secret (password or reset code) with bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext secret against a stored bcrypt hash.
// bcrypt performs the comparison in constant effort, so this is also used for
// reset codes instead of a raw string equality.
func CheckPasswordHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
