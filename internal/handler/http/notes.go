package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// createNote handles POST /api/notes. The owner is always the caller.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoActiveIdentity, "create note without identity")
		return
	}

	var req noteRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid note body")
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), models.Note{
		UserID: identity.UserID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		writeError(w, r, err, "error creating note")
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

// getNote handles GET /api/notes/{id}.
func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoActiveIdentity, "get note without identity")
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), identity.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error getting note")
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing note response")
	}
}

// deleteNote handles DELETE /api/notes/{id}.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoActiveIdentity, "delete note without identity")
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), identity.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
