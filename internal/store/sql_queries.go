package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	userColumns    = []string{"id", "email_index", "encrypted_email", "salt", "password_hash", "created_at"}
	sessionColumns = []string{"id", "user_id", "token", "created_at"}
	noteColumns    = []string{"id", "user_id", "title", "body", "created_at"}
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return wrapBuild(b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.EmailIndex, user.EncryptedEmail, user.Salt, user.PasswordHash, user.CreatedAt).
		ToSql())
}

// buildFindUserQuery selects a user by a single unique column.
func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return wrapBuild(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql())
}

// ── sessions ──────────────────────────────────────────────────────────────────

func buildCreateSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return wrapBuild(b.Insert(session.TableName()).
		Columns(sessionColumns...).
		Values(session.SessionID, session.UserID, session.Token, session.CreatedAt).
		ToSql())
}

func buildFindSessionQuery(b sq.StatementBuilderType, userID, token string) (string, []any, error) {
	return wrapBuild(b.Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"user_id": userID, "token": token}).
		Limit(1).
		ToSql())
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, userID, token string) (string, []any, error) {
	return wrapBuild(b.Delete(models.Session{}.TableName()).
		Where(sq.Eq{"user_id": userID, "token": token}).
		ToSql())
}

// buildDeleteSessionsBeforeQuery deletes sessions created before the given
// moment. An empty userID matches every user.
func buildDeleteSessionsBeforeQuery(b sq.StatementBuilderType, userID string, before time.Time) (string, []any, error) {
	where := sq.And{sq.Lt{"created_at": before}}
	if userID != "" {
		where = sq.And{sq.Eq{"user_id": userID}, sq.Lt{"created_at": before}}
	}

	return wrapBuild(b.Delete(models.Session{}.TableName()).
		Where(where).
		ToSql())
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return wrapBuild(b.Insert(note.TableName()).
		Columns(noteColumns...).
		Values(note.ID, note.UserID, note.Title, note.Body, note.CreatedAt).
		ToSql())
}

func buildFindNoteQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return wrapBuild(b.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Limit(1).
		ToSql())
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return wrapBuild(b.Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
