package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
)

var (
	testCipherOnce sync.Once
	testCipher     EmailCipher
)

// newTestCipher shares one cipher between tests; scrypt is slow.
func newTestCipher(t *testing.T) EmailCipher {
	t.Helper()
	testCipherOnce.Do(func() {
		c, err := NewEmailCipher("test-password", "test-salt")
		if err != nil {
			t.Fatalf("NewEmailCipher error: %v", err)
		}
		testCipher = c
	})
	if testCipher == nil {
		t.Fatal("test cipher was not initialised")
	}
	return testCipher
}

func TestNewEmailCipher_EmptySecrets(t *testing.T) {
	if _, err := NewEmailCipher("", "salt"); !errors.Is(err, ErrEmptyCipherSecret) {
		t.Fatalf("expected ErrEmptyCipherSecret, got %v", err)
	}
	if _, err := NewEmailCipher("password", ""); !errors.Is(err, ErrEmptyCipherSecret) {
		t.Fatalf("expected ErrEmptyCipherSecret, got %v", err)
	}
}

func TestEmailCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	inputs := []string{
		"a@b.c",
		"exactly-16-bytes",
		"user.name+tag@example.com",
		"юникод@пример.рф",
		strings.Repeat("x", 300),
	}

	for _, in := range inputs {
		enc, err := c.Encrypt(in)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", in, err)
		}
		if enc == in {
			t.Fatalf("ciphertext equals plaintext for %q", in)
		}
		dec, err := c.Decrypt(enc)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if dec != in {
			t.Fatalf("round trip = %q, want %q", dec, in)
		}
	}
}

func TestEmailCipher_EmptyIdentity(t *testing.T) {
	c := newTestCipher(t)

	enc, err := c.Encrypt("")
	if err != nil || enc != "" {
		t.Fatalf("Encrypt(\"\") = %q, %v; want empty, nil", enc, err)
	}
	dec, err := c.Decrypt("")
	if err != nil || dec != "" {
		t.Fatalf("Decrypt(\"\") = %q, %v; want empty, nil", dec, err)
	}
}

func TestEmailCipher_RandomIV(t *testing.T) {
	c := newTestCipher(t)

	a, err := c.Encrypt("same@example.com")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encrypt("same@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("expected different ciphertexts for the same plaintext")
	}
}

func TestEmailCipher_Malformed(t *testing.T) {
	c := newTestCipher(t)

	valid, err := c.Encrypt("a@b.c")
	if err != nil {
		t.Fatal(err)
	}

	cases := map[string]string{
		"not hex":       "zz-not-hex",
		"one block":     strings.Repeat("00", 16),
		"not aligned":   valid + "00",
		"bad padding":   encryptRaw(t, c, make([]byte, 16)),
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decrypt(in)
			if !errors.Is(err, ErrMalformedCiphertext) {
				t.Fatalf("expected ErrMalformedCiphertext, got %v", err)
			}
		})
	}
}

func TestEmailCipher_WrongKey(t *testing.T) {
	c := newTestCipher(t)
	other, err := NewEmailCipher("other-password", "test-salt")
	if err != nil {
		t.Fatal(err)
	}

	enc, err := c.Encrypt("someone@example.com")
	if err != nil {
		t.Fatal(err)
	}

	dec, err := other.Decrypt(enc)
	if err == nil && dec == "someone@example.com" {
		t.Fatal("decryption with another key must not recover the plaintext")
	}
}

func TestPKCS7(t *testing.T) {
	for n := 0; n <= 32; n++ {
		data := []byte(strings.Repeat("a", n))
		padded := pkcs7Pad(append([]byte(nil), data...), 16)
		if len(padded)%16 != 0 || len(padded) <= n {
			t.Fatalf("pad(%d) length = %d", n, len(padded))
		}
		out, err := pkcs7Unpad(padded, 16)
		if err != nil {
			t.Fatalf("unpad(%d) error: %v", n, err)
		}
		if string(out) != string(data) {
			t.Fatalf("unpad(%d) = %q", n, out)
		}
	}
}

// encryptRaw CBC-encrypts block-aligned data without padding.
func encryptRaw(t *testing.T, c EmailCipher, data []byte) string {
	t.Helper()
	ec, ok := c.(*emailCipher)
	if !ok {
		t.Fatal("unexpected cipher implementation")
	}
	out := make([]byte, aes.BlockSize+len(data))
	cipher.NewCBCEncrypter(ec.block, out[:aes.BlockSize]).CryptBlocks(out[aes.BlockSize:], data)
	return hex.EncodeToString(out)
}
