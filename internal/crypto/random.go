package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// Lengths in bytes of generated secrets before hex encoding.
const (
	SaltSize  = 16
	TokenSize = 32
)

// GenerateSalt returns SaltSize random bytes from the OS CSPRNG, hex-encoded.
func GenerateSalt() (string, error) {
	return randomHex(SaltSize)
}

// GenerateToken returns TokenSize random bytes from the OS CSPRNG,
// hex-encoded. Used as the raw session token.
func GenerateToken() (string, error) {
	return randomHex(TokenSize)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if err := randomBytes(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func randomBytes(buf []byte) error {
	_, err := io.ReadFull(rand.Reader, buf)
	return err
}
