package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository].
type noteRepository struct {
	db *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB) NoteRepository {
	db.logger.Debug().Msg("creating note repository")
	return &noteRepository{db: db}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(r.db.builder, note)
	if err != nil {
		return models.Note{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Bool("retryable", r.db.retryable(err)).Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

func (r *noteRepository) FindNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindNoteQuery(r.db.builder, userID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&note.ID, &note.UserID, &note.Title, &note.Body, &note.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", "*noteRepository.FindNote").Bool("retryable", r.db.retryable(err)).Msg("error selecting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder, userID, noteID)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Bool("retryable", r.db.retryable(err)).Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
