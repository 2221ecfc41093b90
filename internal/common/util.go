package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandBytes returns n cryptographically random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// MakeRandHexString returns a random hex string of length 2*n.
func MakeRandHexString(n int) (string, error) {
	b, err := RandBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes the slice in place. Used for password buffers once
// they have been consumed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
