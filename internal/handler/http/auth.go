package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// signup handles POST /api/signup.
//
// Responds 201 with {"token": "..."} on success, 400 for a malformed body or
// invalid credentials and 409 when the email is taken.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := utils.DecodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err, "invalid signup body")
		return
	}

	issued, err := h.services.AuthService.Signup(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, "signup failed")
		return
	}

	writeToken(w, r, issued, http.StatusCreated)
}

// login handles POST /api/login.
//
// Responds 200 with {"token": "..."} on success, 400 for invalid input, 404
// for an unknown email and 403 for a wrong password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := utils.DecodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err, "invalid login body")
		return
	}

	issued, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	writeToken(w, r, issued, http.StatusOK)
}

// logout handles POST /api/logout and revokes the session of the caller.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoActiveIdentity, "logout without identity")
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), identity); err != nil {
		writeError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeToken(w http.ResponseWriter, r *http.Request, issued models.IssuedToken, status int) {
	w.Header().Set("Authorization", "Bearer "+issued.String())
	if _, err := utils.WriteJSON(w, models.TokenResponse{Token: issued.String()}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token response")
	}
}
