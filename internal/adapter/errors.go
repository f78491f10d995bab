package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNotAuthenticated is returned by calls that need a bearer token
	// before Signup or Login stored one.
	ErrNotAuthenticated = errors.New("not authenticated")

	errEmptyAddress = errors.New("empty address")
)
