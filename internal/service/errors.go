package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoActiveIdentity        = errors.New("no active identity")

	ErrSessionCreationFailed = errors.New("session creation failed")
)
