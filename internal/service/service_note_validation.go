package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService validates note requests before delegating to the
// wrapped NoteService. Validation failures wrap ErrInvalidDataProvided.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	if err := v.validateLookup(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := v.validateLookup(ctx, userID, noteID); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) validateLookup(ctx context.Context, userID, noteID string) error {
	lookup := models.Note{ID: noteID, UserID: userID}
	if err := v.validator.Validate(ctx, lookup, validators.FieldUserID, validators.FieldNoteID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
