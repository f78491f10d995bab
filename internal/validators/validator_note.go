package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidator checks notes before they are created or looked up.
// Without explicit fields it validates a new note: owner, title and body.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts [models.Note] or a pointer to it.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if note.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if strings.TrimSpace(note.ID) == "" {
				return ErrInvalidNoteID
			}
		case FieldTitle:
			if note.Title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(note.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldBody:
			if note.Body == "" {
				return ErrEmptyBody
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
