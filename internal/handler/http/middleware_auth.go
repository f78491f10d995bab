package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It requires an "Authorization: Bearer <token>" header, verifies the token
// via [service.SessionService.Verify] and, on success, stores the resulting
// [models.Identity] in the request context (see [utils.WithIdentity]) before
// delegating to the next handler.
//
// Every rejection (missing or malformed header, bad signature, expired or
// revoked session) is answered with 403 Forbidden and the next handler is
// not called.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err, "rejected authorization header")
			return
		}

		ctx := r.Context()
		identity, err := h.services.SessionService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "token verification failed")
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("user_id", identity.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
