package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService registers and authenticates users.
type AuthService interface {
	// Signup creates an account for creds and issues its first session.
	Signup(ctx context.Context, creds models.Credentials) (models.IssuedToken, error)

	// Login checks creds against the stored account and issues a new session.
	Login(ctx context.Context, creds models.Credentials) (models.IssuedToken, error)

	// Logout revokes the session of identity.
	Logout(ctx context.Context, identity models.Identity) error

	// Hello returns the decrypted email of the caller.
	Hello(ctx context.Context, identity models.Identity) (string, error)
}

// SessionService manages the lifecycle of server-side sessions and the
// signed tokens that reference them.
type SessionService interface {
	Issue(ctx context.Context, userID string) (models.IssuedToken, error)
	Verify(ctx context.Context, signed string) (models.Identity, error)
	Revoke(ctx context.Context, userID, token string) error

	// PurgeExpired removes the expired sessions of every user and returns
	// how many rows were deleted.
	PurgeExpired(ctx context.Context) (int64, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// SweepScheduler runs session maintenance off the request path.
type SweepScheduler interface {
	// Schedule queues job and reports whether it was accepted.
	// It must not block.
	Schedule(job func(ctx context.Context)) bool
}
