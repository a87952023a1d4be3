package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SumSHA256 returns the SHA-256 checksum of the provided data.
func SumSHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// HashPassword returns the hex SHA-256 digest stored for admin passwords.
// Digests are unsalted so existing admin rows stay valid.
func HashPassword(password string) string {
	sum := SumSHA256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares password against a stored digest in constant time.
func CheckPassword(digest, password string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(HashPassword(password))) == 1
}
