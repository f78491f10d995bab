// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the note keeper HTTP API.
//
// [NoteKeeperAPI] hides the REST details from callers: it serialises request
// bodies, keeps the bearer token returned by signup and login, and maps HTTP
// statuses to the sentinel errors in errors.go so that callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteKeeperAPI is the client-side view of the note keeper server.
type NoteKeeperAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup creates an account and stores the returned token.
	Signup(ctx context.Context, creds models.Credentials) (string, error)

	// Login authenticates with existing credentials and stores the returned
	// token.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Logout revokes the current session and forgets the token, even if the
	// server rejected it.
	Logout(ctx context.Context) error

	// Hello returns the email of the authenticated account.
	Hello(ctx context.Context) (string, error)

	CreateNote(ctx context.Context, title, body string) (models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
