// Package creds implements the credential store: one-way password hashing with
// bcrypt and generation of opaque session tokens. No plaintext password is ever
// persisted or logged; hashes travel only between this package and storage.
package creds

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// TokenEntropyBytes is the number of random bytes behind each session token.
// The hex encoding doubles this to a 64-character opaque string.
const TokenEntropyBytes = 32

// HashPassword derives a salted bcrypt hash from a plaintext password.
// The default cost keeps hashing slow enough to resist offline guessing.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored hash.
// Comparison is delegated to bcrypt's own constant-time verify routine.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewSessionToken generates a cryptographically random opaque token.
// Tokens carry no structure or claims; identity is resolved by a storage lookup.
func NewSessionToken() (string, error) {
	buf := make([]byte, TokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
