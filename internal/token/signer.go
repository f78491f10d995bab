package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs and verifies [Claims] with a single HMAC algorithm and key.
// It is immutable and safe for concurrent use.
type Signer struct {
	key    []byte
	method jwt.SigningMethod
	issuer string
	parser *jwt.Parser
}

// NewSigner returns a [Signer] for the HMAC algorithm alg ("HS256", "HS384"
// or "HS512"). Tokens it signs carry issuer as iss, and Parse only accepts
// tokens with that issuer.
func NewSigner(secret, alg, issuer string) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &Signer{
		key:    []byte(secret),
		method: method,
		issuer: issuer,
		parser: jwt.NewParser(opts...),
	}, nil
}

// Sign stamps the configured issuer into claims and returns the compact
// signed token.
func (s *Signer) Sign(claims Claims) (string, error) {
	if err := claims.Validate(); err != nil {
		return "", err
	}

	claims.Issuer = s.issuer
	if claims.Subject == "" {
		claims.Subject = claims.UserID
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

// Parse verifies signature, algorithm, issuer and expiry of signed and
// returns its claims. Every failure wraps [ErrInvalidToken]; an expired but
// otherwise valid token yields [ErrExpiredToken].
func (s *Signer) Parse(signed string) (Claims, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(signed, &claims, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

func (s *Signer) keyFunc(t *jwt.Token) (any, error) {
	if t.Method.Alg() != s.method.Alg() {
		return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
	}
	return s.key, nil
}
