// Package crypto holds the cryptographic primitives of the authentication
// subsystem: the at-rest email cipher, the deterministic email lookup index,
// the stretched password hasher and random secret generation.
//
// All implementations are safe for concurrent use once constructed.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EmailCipher encrypts email addresses before they reach the store.
//
// Ciphertexts are hex(IV ‖ AES-256-CBC(PKCS#7(plaintext))) with a fresh random
// IV per call, so two encryptions of the same address differ. An empty
// plaintext encrypts to an empty string and vice versa.
type EmailCipher interface {
	// Encrypt returns the hex-encoded ciphertext of plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Returns [ErrMalformedCiphertext] for input
	// that is not valid hex, is shorter than two blocks, is not block
	// aligned or carries invalid padding.
	Decrypt(ciphertext string) (string, error)
}

// EmailIndex computes the deterministic keyed lookup value of an email.
// Two addresses that differ only in case or surrounding whitespace map to
// the same index.
type EmailIndex interface {
	Compute(email string) string
}

// PasswordHasher produces and checks stretched password digests.
type PasswordHasher interface {
	// Hash returns hex(SHA-512^(n+1)(password ‖ salt)). Deterministic.
	Hash(password, salt string) string

	// Verify reports whether password and salt reproduce hash. The
	// comparison runs in constant time.
	Verify(password, salt, hash string) bool
}
