package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set of an issued token.
type Claims struct {
	// UserID duplicates sub under its own name.
	UserID string `json:"userId"`
	// Token is the raw session token stored in the sessions table.
	Token string `json:"token"`

	jwt.RegisteredClaims
}

// NewClaims builds claims for userID and the raw session token, valid for
// ttl from issuedAt. A random jti is generated per call so that two tokens
// issued within the same second never coincide.
func NewClaims(userID, sessionToken string, issuedAt time.Time, ttl time.Duration) Claims {
	return Claims{
		UserID: userID,
		Token:  sessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
}

// Validate implements jwt.ClaimsValidator. It runs after the registered
// claims checks.
func (c Claims) Validate() error {
	if c.UserID == "" || c.Token == "" {
		return ErrInvalidClaims
	}
	if c.Subject != "" && c.Subject != c.UserID {
		return ErrInvalidClaims
	}
	return nil
}
