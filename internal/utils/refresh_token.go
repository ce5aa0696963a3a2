package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashRefreshToken hashes an opaque refresh token for storage. SHA-256 is
// enough here: the token is 32 bytes of CSPRNG output, not a password.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token against a stored hash
// in constant time.
func CompareRefreshTokenHash(token, storedHash string) bool {
	computed := HashRefreshToken(token)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
