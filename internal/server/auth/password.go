package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost balances hashing time against brute-force resistance.
const DefaultBcryptCost = 12

// HashPassword returns a salted bcrypt hash of plaintext. The salt is random
// per call, so hashing the same input twice yields different outputs.
func HashPassword(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), DefaultBcryptCost)
}

// VerifyPassword reports whether plaintext matches hash. Comparison is
// constant-time; malformed hashes simply report false.
func VerifyPassword(plaintext string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
