package http

import (
	"encoding/json"
	"net/http"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/utils"
	"github.com/multilang/concept-memo/models"
)

func (h *Handler) listWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	conceptID, err := pathID(r, "conceptID")
	if err != nil {
		http.Error(w, "invalid concept id", http.StatusBadRequest)
		return
	}

	words, err := h.services.WordService.ListByConcept(ctx, username, conceptID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, words, http.StatusOK)
}

func (h *Handler) createWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	conceptID, err := pathID(r, "conceptID")
	if err != nil {
		http.Error(w, "invalid concept id", http.StatusBadRequest)
		return
	}

	var req models.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	word, err := h.services.WordService.Add(ctx, username, conceptID, models.Word{
		Word:     req.Word,
		Language: req.Language,
		IPA:      req.IPA,
		Nuance:   req.Nuance,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, word, http.StatusOK)
}

func (h *Handler) getWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	conceptID, err := pathID(r, "conceptID")
	if err != nil {
		http.Error(w, "invalid concept id", http.StatusBadRequest)
		return
	}

	wordID, err := pathID(r, "wordID")
	if err != nil {
		http.Error(w, "invalid word id", http.StatusBadRequest)
		return
	}

	word, err := h.services.WordService.GetByID(ctx, username, conceptID, wordID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, word, http.StatusOK)
}

func (h *Handler) updateWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	conceptID, err := pathID(r, "conceptID")
	if err != nil {
		http.Error(w, "invalid concept id", http.StatusBadRequest)
		return
	}

	wordID, err := pathID(r, "wordID")
	if err != nil {
		http.Error(w, "invalid word id", http.StatusBadRequest)
		return
	}

	var req models.WordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	word, err := h.services.WordService.Update(ctx, username, conceptID, wordID, models.Word{
		Word:     req.Word,
		Language: req.Language,
		IPA:      req.IPA,
		Nuance:   req.Nuance,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, word, http.StatusOK)
}

func (h *Handler) deleteWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	conceptID, err := pathID(r, "conceptID")
	if err != nil {
		http.Error(w, "invalid concept id", http.StatusBadRequest)
		return
	}

	wordID, err := pathID(r, "wordID")
	if err != nil {
		http.Error(w, "invalid word id", http.StatusBadRequest)
		return
	}

	if err := h.services.WordService.Delete(ctx, username, conceptID, wordID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
