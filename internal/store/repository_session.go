package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
type sessionRepository struct {
	db *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB) SessionRepository {
	db.logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionQuery(r.db.builder, session)
	if err != nil {
		return models.Session{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Bool("retryable", r.db.retryable(err)).Msg("error inserting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return session, nil
}

func (r *sessionRepository) FindSession(ctx context.Context, userID, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(r.db.builder, userID, token)
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&session.SessionID, &session.UserID, &session.Token, &session.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	case err != nil:
		log.Err(err).Str("func", "*sessionRepository.FindSession").Bool("retryable", r.db.retryable(err)).Msg("error selecting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, userID, token string) (int64, error) {
	query, args, err := buildDeleteSessionQuery(r.db.builder, userID, token)
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, "*sessionRepository.DeleteSession", query, args)
}

func (r *sessionRepository) DeleteSessionsOlderThan(ctx context.Context, userID string, before time.Time) (int64, error) {
	if userID == "" {
		return 0, nil
	}

	query, args, err := buildDeleteSessionsBeforeQuery(r.db.builder, userID, before.UTC())
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, "*sessionRepository.DeleteSessionsOlderThan", query, args)
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildDeleteSessionsBeforeQuery(r.db.builder, "", before.UTC())
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, "*sessionRepository.DeleteExpiredSessions", query, args)
}

func (r *sessionRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("error deleting sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
