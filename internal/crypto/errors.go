package crypto

import "errors"

var (
	// ErrMalformedCiphertext is returned by [EmailCipher.Decrypt] when the
	// input cannot be a ciphertext produced by Encrypt.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrEmptyCipherSecret is returned when the cipher password or salt is empty.
	ErrEmptyCipherSecret = errors.New("empty cipher password or salt")

	// ErrEmptyIndexKey is returned when the email index key is empty.
	ErrEmptyIndexKey = errors.New("empty email index key")
)
