package crypto

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
)

// DefaultHashIterations is the number of extra SHA-512 rounds applied when
// no positive value is configured.
const DefaultHashIterations = 5000

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	iterations int
}

// NewPasswordHasher returns a [PasswordHasher] applying iterations extra
// SHA-512 rounds. A negative value falls back to [DefaultHashIterations];
// zero means a single digest.
func NewPasswordHasher(iterations int) PasswordHasher {
	if iterations < 0 {
		iterations = DefaultHashIterations
	}

	return &passwordHasher{iterations: iterations}
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password, salt string) string {
	sum := sha512.Sum512([]byte(password + salt))
	for range h.iterations {
		sum = sha512.Sum512(sum[:])
	}

	return hex.EncodeToString(sum[:])
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(password, salt, hash string) bool {
	computed := h.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
