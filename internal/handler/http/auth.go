package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type credentialsCheck func(ctx context.Context, user models.User) (models.User, error)

// POST /api/user/register
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "register", h.services.AuthService.RegisterUser)
}

// POST /api/user/login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "login", h.services.AuthService.Login)
}

// authenticate decodes the credentials, runs check on them and on success
// answers with a fresh token in the Authorization header and the account in
// the body.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, action string, check credentialsCheck) {
	ctx := r.Context()
	log := logger.FromRequest(r).With().Str("action", action).Logger()

	var credentials models.User
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Warn().Err(err).Msg("undecodable credentials")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := check(ctx, credentials)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Send()
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token not issued")
		writeError(w, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("authenticated")
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{UserID: user.UserID, Login: user.Login}, http.StatusOK)
}
