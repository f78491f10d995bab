package utils

import (
	"errors"
	"strings"
)

const bearerPrefix = "Bearer "

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] for any
// header that is not exactly "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an Authorization header value.
//
// The header must consist of the case-sensitive scheme "Bearer", a single
// space and a non-empty token containing no whitespace. Anything else,
// including surrounding whitespace, is rejected.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok || token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
