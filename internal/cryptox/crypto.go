// Package cryptox implements password verifier derivation for local
// accounts. Passwords are never stored; the roster keeps a random salt and
// an argon2id-derived verifier instead.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"cinetrack/internal/common"
)

// SaltSize is the number of random bytes in a password salt.
const SaltSize = 16

// NewSalt returns a fresh random salt.
func NewSalt() ([]byte, error) {
	return common.RandBytes(SaltSize)
}

// DeriveVerifier derives the stored password verifier from a password and
// salt: argon2id key derivation followed by a SHA-256 fold, so the derived
// key itself never leaves this function.
func DeriveVerifier(password []byte, salt []byte) []byte {
	key := argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
	sum := sha256.Sum256(key)
	return sum[:]
}

// VerifyPassword reports whether password matches the stored salt/verifier
// pair. Comparison is constant time.
func VerifyPassword(password []byte, salt []byte, verifier []byte) bool {
	candidate := DeriveVerifier(password, salt)
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
