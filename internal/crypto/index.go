package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// emailIndex is the private implementation of [EmailIndex]. It keeps a pool
// of keyed HMAC-SHA256 instances to avoid re-keying on every call.
type emailIndex struct {
	pool sync.Pool
}

// NewEmailIndex returns an [EmailIndex] computing HMAC-SHA256 under key.
func NewEmailIndex(key string) (EmailIndex, error) {
	if key == "" {
		return nil, ErrEmptyIndexKey
	}

	idx := &emailIndex{}
	idx.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}

	return idx, nil
}

// Compute implements [EmailIndex].
func (i *emailIndex) Compute(email string) string {
	h := i.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(NormalizeEmail(email)))
	sum := h.Sum(nil)

	h.Reset()
	i.pool.Put(h)

	return hex.EncodeToString(sum)
}

// NormalizeEmail trims surrounding whitespace and lower-cases email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
