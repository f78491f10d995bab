package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// dummySalt feeds the password hash spent on unknown emails when login
// errors are unified.
const dummySalt = "00000000000000000000000000000000"

// authService is the concrete implementation of AuthService.
// The plaintext email never reaches the store: accounts are looked up by
// the keyed email index and the address itself is kept encrypted.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionService issues and revokes the sessions behind bearer tokens.
	sessionService SessionService

	cipher crypto.EmailCipher
	index  crypto.EmailIndex
	hasher crypto.PasswordHasher

	// validator checks credentials before any crypto or store work.
	validator validators.Validator

	idGenerator utils.IDGenerator

	// unifyLoginErrors makes an unknown email indistinguishable from a
	// wrong password at login.
	unifyLoginErrors bool

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over userRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionService SessionService,
	security Security,
	idGenerator utils.IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:   userRepository,
		sessionService:   sessionService,
		cipher:           security.Cipher,
		index:            security.Index,
		hasher:           security.Hasher,
		validator:        validators.NewCredentialsValidator(),
		idGenerator:      idGenerator,
		unifyLoginErrors: cfg.UnifyLoginErrors,
		now:              time.Now,
		logger:           logger,
	}
}

// Signup creates a new account and issues its first session.
//
// Returns the signed token or:
//   - ErrInvalidDataProvided if the credentials fail validation.
//   - store.ErrEmailAlreadyExists if the email is taken, including the case
//     where a concurrent signup wins the race on the unique index.
//   - a wrapped crypto, storage or session error otherwise.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.IssuedToken, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Msg("invalid signup credentials")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	emailIndex := a.index.Compute(creds.Email)

	_, err := a.userRepository.FindUserByEmailIndex(ctx, emailIndex)
	switch {
	case err == nil:
		log.Debug().Msg("email is already registered")
		return models.IssuedToken{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user search by email index failed")
		return models.IssuedToken{}, fmt.Errorf("user search by email index failed: %w", err)
	}

	encryptedEmail, err := a.cipher.Encrypt(strings.TrimSpace(creds.Email))
	if err != nil {
		log.Err(err).Msg("error encrypting email")
		return models.IssuedToken{}, fmt.Errorf("error encrypting email: %w", err)
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("error generating salt")
		return models.IssuedToken{}, fmt.Errorf("error generating salt: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:         a.idGenerator.Generate(),
		EmailIndex:     emailIndex,
		EncryptedEmail: encryptedEmail,
		Salt:           salt,
		PasswordHash:   a.hasher.Hash(creds.Password, salt),
		CreatedAt:      a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.IssuedToken{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user signed up")
	return a.sessionService.Issue(ctx, user.UserID)
}

// Login authenticates an existing account and issues a new session.
//
// Returns the signed token or:
//   - ErrInvalidDataProvided if the credentials fail validation.
//   - store.ErrUserNotFound (wrapped) if no account has this email, unless
//     login errors are unified, in which case ErrWrongPassword is returned.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.IssuedToken, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Msg("invalid login credentials")
		return models.IssuedToken{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmailIndex(ctx, a.index.Compute(creds.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) && a.unifyLoginErrors {
			a.hasher.Hash(creds.Password, dummySalt)
			return models.IssuedToken{}, ErrWrongPassword
		}
		log.Debug().Err(err).Msg("user search by email index failed")
		return models.IssuedToken{}, fmt.Errorf("user search by email index failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.Salt, user.PasswordHash) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.IssuedToken{}, ErrWrongPassword
	}

	return a.sessionService.Issue(ctx, user.UserID)
}

// Logout revokes the session behind identity. Logging out of a session that
// is already gone succeeds.
func (a *authService) Logout(ctx context.Context, identity models.Identity) error {
	if identity.IsEmpty() {
		return ErrNoActiveIdentity
	}

	return a.sessionService.Revoke(ctx, identity.UserID, identity.Token)
}

// Hello returns the plaintext email of the caller. A user deleted after the
// token was issued yields store.ErrUserNotFound.
func (a *authService) Hello(ctx context.Context, identity models.Identity) (string, error) {
	log := logger.FromContext(ctx)

	if identity.IsEmpty() {
		return "", ErrNoActiveIdentity
	}

	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		log.Debug().Err(err).Str("user_id", identity.UserID).Msg("user search by id failed")
		return "", fmt.Errorf("user search by id failed: %w", err)
	}

	email, err := a.cipher.Decrypt(user.EncryptedEmail)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("error decrypting email")
		return "", fmt.Errorf("error decrypting email: %w", err)
	}

	return email, nil
}
