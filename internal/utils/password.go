package utils

import (
	"fmt"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of its input. Hangul takes three
// bytes per rune, so the rune limit on the request is not enough.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", apperrors.NewFieldError("password", "password must be at most %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
// Users that signed up through Google have no hash and never match.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
