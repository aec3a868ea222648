package http

import (
	"encoding/json"
	"net/http"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/utils"
	"github.com/multilang/concept-memo/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.SessionService.Register(ctx, req.Username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		Username: user.Username,
		Token:    user.Token,
	}, http.StatusOK)
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.SessionService.VerifyAndRenew(ctx, req.Token)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Debug().Str("username", user.Username).Msg("session verified and renewed")

	utils.WriteJSON(w, models.AuthResponse{
		Username: user.Username,
		Token:    user.Token,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SessionService.Invalidate(ctx, req.Token); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
