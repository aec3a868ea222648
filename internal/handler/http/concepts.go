package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/utils"
	"github.com/multilang/concept-memo/models"
)

// tenantFromContext pulls the username resolved by the auth middleware.
// A missing value means the route was wired outside the auth group, which
// is a programming error surfaced as 401.
func (h *Handler) tenantFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no username in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}

	return username, true
}

// pathID parses a chi URL parameter holding a numeric identifier.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// listConcepts handles GET /api/concepts. A present, non-empty `query`
// parameter routes to the search engine; otherwise every concept of the
// tenant is returned. Both paths deliver full aggregates.
func (h *Handler) listConcepts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	var concepts []models.Concept
	var err error

	if query := r.URL.Query().Get("query"); query != "" {
		concepts, err = h.services.ConceptService.Search(ctx, username, query)
	} else {
		concepts, err = h.services.ConceptService.ListAll(ctx, username)
	}

	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, concepts, http.StatusOK)
}

func (h *Handler) createConcept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	var req models.ConceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	concept, err := h.services.ConceptService.Create(ctx, username, req.Name, req.Notes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, concept, http.StatusOK)
}

func (h *Handler) getConcept(w http.ResponseWriter, r *http.Request) {
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

	concept, err := h.services.ConceptService.GetByID(ctx, username, conceptID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, concept, http.StatusOK)
}

func (h *Handler) updateConcept(w http.ResponseWriter, r *http.Request) {
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

	var req models.ConceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	concept, err := h.services.ConceptService.Update(ctx, username, conceptID, req.Name, req.Notes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, concept, http.StatusOK)
}

func (h *Handler) deleteConcept(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.ConceptService.Delete(ctx, username, conceptID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
