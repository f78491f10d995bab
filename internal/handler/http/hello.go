package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// hello handles GET /api/hello and greets the caller with their email.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoActiveIdentity, "hello without identity")
		return
	}

	email, err := h.services.AuthService.Hello(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "hello failed")
		return
	}

	if _, err = utils.WriteJSON(w, models.HelloResponse{Hello: email}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing hello response")
	}
}
