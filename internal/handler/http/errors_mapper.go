package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order with errors.Is; the first hit wins.
var errorResponses = []errorResponse{
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrNoActiveIdentity, http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid},
	{utils.ErrInvalidAuthorizationHeader, http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrWrongPassword, http.StatusForbidden, app.MsgInvalidEmailPassword},

	{utils.ErrInvalidJSONBody, http.StatusBadRequest, app.MsgInvalidJSON},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyEmail, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmailTooLong, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyPassword, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidUserID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidNoteID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyTitle, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrTitleTooLong, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
}

// statusFromError returns the HTTP status and the response message for err.
// Unknown errors, including crypto and driver failures, map to 500 with a
// generic message.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err under msg and writes the mapped plain-text response.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	http.Error(w, message, status)
}
