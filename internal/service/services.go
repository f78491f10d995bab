package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	NoteService    NoteService
}

// NewServices wires the services over storages. Sweeps requested at session
// issuance are handed to scheduler.
func NewServices(storages *store.Storages, security Security, scheduler SweepScheduler, cfg config.App, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()

	sessionService := NewSessionService(storages.SessionRepository, security.Signer, scheduler, ids, cfg, logger)
	authService := NewAuthService(storages.UserRepository, sessionService, security, ids, cfg, logger)
	noteService := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, ids))

	return &Services{
		AuthService:    authService,
		SessionService: sessionService,
		NoteService:    noteService,
	}
}
