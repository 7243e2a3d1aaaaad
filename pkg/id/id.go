// Package id mints and checks the public identifiers exposed over the API.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Length of every public id.
const Length = 32

// NewID32 returns 32 lowercase hex characters.
func NewID32() string {
	b := make([]byte, Length/2)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid reports whether s has the shape NewID32 produces.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
