// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// note keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is empty, too large
	// or not a single JSON value.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the decoded request fails
	// validation (e.g. empty email or note title).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyExists is returned when a signup is rejected because the
	// email is already registered.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUserNotFound is returned when no account matches the email at login
	// or the account behind a token no longer exists.
	MsgUserNotFound = "user not found"

	// MsgInvalidEmailPassword is returned when the password does not match
	// the account, and for unknown emails when login errors are unified.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is
	// missing, malformed, forged, expired or revoked.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoteNotFound is returned when a note does not exist for the current
	// user.
	MsgNoteNotFound = "note not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
