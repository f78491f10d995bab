package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-sign-key"
	testIssuer = "test-issuer"
)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	s, err := NewSigner(testSecret, "HS256", testIssuer)
	require.NoError(t, err)
	return s
}

func TestNewSigner(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		alg     string
		wantErr error
	}{
		{name: "HS256", secret: "k", alg: "HS256"},
		{name: "HS384", secret: "k", alg: "HS384"},
		{name: "HS512", secret: "k", alg: "HS512"},
		{name: "empty secret", secret: "", alg: "HS256", wantErr: ErrEmptySecret},
		{name: "rsa", secret: "k", alg: "RS256", wantErr: ErrUnsupportedAlgorithm},
		{name: "none", secret: "k", alg: "none", wantErr: ErrUnsupportedAlgorithm},
		{name: "unknown", secret: "k", alg: "HS1024", wantErr: ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSigner(tt.secret, tt.alg, testIssuer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestSigner_RoundTrip(t *testing.T) {
	s := newTestSigner(t)
	now := time.Now()

	signed, err := s.Sign(NewClaims("user-1", "session-token", now, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(signed, "."))

	claims, err := s.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "session-token", claims.Token)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestSigner_UniquePerIssuance(t *testing.T) {
	s := newTestSigner(t)
	now := time.Now()

	a, err := s.Sign(NewClaims("u", "t", now, time.Hour))
	require.NoError(t, err)
	b, err := s.Sign(NewClaims("u", "t", now, time.Hour))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSigner_SignRejectsEmptyClaims(t *testing.T) {
	s := newTestSigner(t)

	_, err := s.Sign(NewClaims("", "t", time.Now(), time.Hour))
	assert.ErrorIs(t, err, ErrInvalidClaims)

	_, err = s.Sign(NewClaims("u", "", time.Now(), time.Hour))
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestSigner_ParseRejects(t *testing.T) {
	s := newTestSigner(t)
	now := time.Now()

	valid, err := s.Sign(NewClaims("u", "t", now, time.Hour))
	require.NoError(t, err)

	otherKey, err := NewSigner("another-key", "HS256", testIssuer)
	require.NoError(t, err)
	forged, err := otherKey.Sign(NewClaims("u", "t", now, time.Hour))
	require.NoError(t, err)

	otherIssuer, err := NewSigner(testSecret, "HS256", "someone-else")
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.Sign(NewClaims("u", "t", now, time.Hour))
	require.NoError(t, err)

	otherAlg, err := NewSigner(testSecret, "HS512", testIssuer)
	require.NoError(t, err)
	wrongAlg, err := otherAlg.Sign(NewClaims("u", "t", now, time.Hour))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "u",
		Token:            "t",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer},
	})
	noExpSigned, err := noExp.SignedString([]byte(testSecret))
	require.NoError(t, err)

	noToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	noTokenSigned, err := noToken.SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, NewClaims("u", "t", now, time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":       "not-a-token",
		"empty":         "",
		"forged":        forged,
		"wrong issuer":  wrongIssuer,
		"wrong alg":     wrongAlg,
		"missing exp":   noExpSigned,
		"missing token": noTokenSigned,
		"alg none":      unsigned,
		"truncated":     valid[:len(valid)-4],
	}

	for name, signed := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Parse(signed)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSigner_ParseExpired(t *testing.T) {
	s := newTestSigner(t)

	signed, err := s.Sign(NewClaims("u", "t", time.Now().Add(-2*time.Hour), time.Hour))
	require.NoError(t, err)

	_, err = s.Parse(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
