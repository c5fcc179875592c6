package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

// auth lets through requests with a valid bearer token. The token subject
// is put into the request context as the owner id and into the request
// logger as owner_id.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("unauthenticated request")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err == nil {
			var ownerID string
			if ownerID, err = token.GetOwnerID(); err == nil {
				log.UpdateContext(func(c zerolog.Context) zerolog.Context {
					return c.Str("owner_id", ownerID)
				})
				ctx := utils.WithOwnerID(log.WithContext(r.Context()), ownerID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		log.Warn().Err(err).Msg("bearer token rejected")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
	})
}

// getTokenFromAuthHeader returns the token of a "Bearer <token>" header
// value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
