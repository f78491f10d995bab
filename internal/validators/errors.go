package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrEmailTooLong  = errors.New("email is too long")
	ErrEmptyPassword = errors.New("password is required")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrInvalidNoteID = errors.New("invalid note ID")
	ErrEmptyTitle    = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title is too long")
	ErrEmptyBody     = errors.New("body is required")
)
