package token

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySecret is returned by [NewSigner] for an empty signing key.
	ErrEmptySecret = errors.New("empty token sign key")
	// ErrUnsupportedAlgorithm is returned by [NewSigner] for anything but
	// HS256, HS384 and HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported token sign algorithm")
	// ErrInvalidClaims is returned when userId or token is empty, or the
	// subject does not match userId.
	ErrInvalidClaims = errors.New("invalid token claims")
	// ErrInvalidToken is returned by [Signer.Parse] for any token that fails
	// verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned by [Signer.Parse] for a well-signed token
	// whose exp has passed. It wraps [ErrInvalidToken].
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)
)
