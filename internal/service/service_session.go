package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/token"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// sessionService is the concrete implementation of SessionService.
// A session goes Created → Active → Expired or Revoked and is never
// resurrected: verification needs a live row younger than ttl.
type sessionService struct {
	// sessionRepository persists and removes session rows.
	sessionRepository store.SessionRepository

	// signer signs and parses the bearer tokens.
	signer *token.Signer

	// scheduler receives the per-user sweep queued after every issuance.
	// A nil scheduler disables the sweep.
	scheduler SweepScheduler

	idGenerator utils.IDGenerator

	// ttl is the lifetime of a session and of the token exp claim.
	ttl time.Duration

	now func() time.Time

	// logger is used by background sweeps which outlive the request context.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService. The session lifetime is
// cfg.SessionTTL.
func NewSessionService(
	sessionRepository store.SessionRepository,
	signer *token.Signer,
	scheduler SweepScheduler,
	idGenerator utils.IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		signer:            signer,
		scheduler:         scheduler,
		idGenerator:       idGenerator,
		ttl:               cfg.SessionTTL,
		now:               time.Now,
		logger:            logger,
	}
}

// Issue creates a new session for userID and returns the signed token
// referencing it.
//
// After the row is stored a sweep of the user's sessions older than the TTL
// is queued. The sweep never delays the response; it is dropped with a
// warning when the queue is full or the sweeper has stopped.
func (s *sessionService) Issue(ctx context.Context, userID string) (models.IssuedToken, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.IssuedToken{}, ErrInvalidDataProvided
	}

	rawToken, err := crypto.GenerateToken()
	if err != nil {
		log.Err(err).Msg("error generating session token")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	issuedAt := s.now().UTC()
	session := models.Session{
		SessionID: s.idGenerator.Generate(),
		UserID:    userID,
		Token:     rawToken,
		CreatedAt: issuedAt,
	}

	if _, err = s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error storing session")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	s.scheduleSweep(ctx, userID, issuedAt)

	claims := token.NewClaims(userID, rawToken, issuedAt, s.ttl)
	signed, err := s.signer.Sign(claims)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error signing token")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return models.IssuedToken{
		SignedString: signed,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Verify checks signed and resolves it to the identity of a live session.
//
// The signature, algorithm, issuer and exp are checked before the store is
// touched. Every failure is reported as ErrTokenIsExpiredOrInvalid.
func (s *sessionService) Verify(ctx context.Context, signed string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	claims, err := s.signer.Parse(signed)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := s.sessionRepository.FindSession(ctx, claims.UserID, claims.Token)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Str("user_id", claims.UserID).Msg("error looking up session")
		}
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	if session.ExpiredAt(s.now(), s.ttl) {
		log.Debug().Str("user_id", session.UserID).Msg("session is expired")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return models.Identity{UserID: session.UserID, Token: session.Token}, nil
}

// Revoke deletes the session (userID, token). Revoking an absent session
// succeeds.
func (s *sessionService) Revoke(ctx context.Context, userID, token string) error {
	deleted, err := s.sessionRepository.DeleteSession(ctx, userID, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error revoking session")
		return fmt.Errorf("error revoking session: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Int64("deleted", deleted).Msg("session revoked")
	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("error purging expired sessions: %w", err)
	}

	return purged, nil
}

func (s *sessionService) scheduleSweep(ctx context.Context, userID string, issuedAt time.Time) {
	if s.scheduler == nil {
		return
	}

	before := issuedAt.Add(-s.ttl)
	sweep := func(jobCtx context.Context) {
		deleted, err := s.sessionRepository.DeleteSessionsOlderThan(jobCtx, userID, before)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("session sweep failed")
			return
		}
		if deleted > 0 {
			s.logger.Debug().Str("user_id", userID).Int64("deleted", deleted).Msg("expired sessions swept")
		}
	}

	if !s.scheduler.Schedule(sweep) {
		logger.FromContext(ctx).Warn().Str("user_id", userID).Msg("sweeper refused the job, session sweep dropped")
	}
}
