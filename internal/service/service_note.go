package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService stores notes on behalf of authenticated users. Input is
// expected to be validated by NoteValidationService.
type noteService struct {
	noteRepository store.NoteRepository
	idGenerator    utils.IDGenerator
	now            func() time.Time
}

func NewNoteService(noteRepository store.NoteRepository, idGenerator utils.IDGenerator) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		idGenerator:    idGenerator,
		now:            time.Now,
	}
}

// CreateNote assigns an id and creation time to note and stores it.
func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.ID = n.idGenerator.Generate()
	note.CreatedAt = n.now().UTC()

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", note.UserID).Msg("error creating note")
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	return created, nil
}

func (n *noteService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	note, err := n.noteRepository.FindNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note: %w", err)
	}

	return note, nil
}

func (n *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}
