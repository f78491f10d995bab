package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// UserRepository persists user accounts. Rows are immutable after creation.
type UserRepository interface {
	// CreateUser inserts user. Returns [ErrEmailAlreadyExists] when a user
	// with the same email index exists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmailIndex returns the user with the given email index, or
	// [ErrUserNotFound].
	FindUserByEmailIndex(ctx context.Context, emailIndex string) (models.User, error)

	// FindUserByID returns the user with the given id, or [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// SessionRepository persists issued sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindSession returns the session matching both userID and token, or
	// [ErrSessionNotFound].
	FindSession(ctx context.Context, userID, token string) (models.Session, error)

	// DeleteSession removes the session matching userID and token and
	// returns the number of deleted rows. Deleting nothing is not an error.
	DeleteSession(ctx context.Context, userID, token string) (int64, error)

	// DeleteSessionsOlderThan removes the sessions of userID created before
	// the given moment.
	DeleteSessionsOlderThan(ctx context.Context, userID string, before time.Time) (int64, error)

	// DeleteExpiredSessions removes the sessions of every user created
	// before the given moment.
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

// NoteRepository persists notes. Every lookup is scoped to the owner.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNote returns the note id owned by userID, or [ErrNoteNotFound].
	FindNote(ctx context.Context, userID, noteID string) (models.Note, error)

	// DeleteNote removes the note id owned by userID. Returns
	// [ErrNoteNotFound] if nothing was deleted.
	DeleteNote(ctx context.Context, userID, noteID string) error
}
