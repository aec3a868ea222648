package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/store"
	"github.com/multilang/concept-memo/models"
)

// conceptService is the concrete implementation of [ConceptService]. It
// validates input at the boundary of the domain and delegates persistence
// and aggregate loading to the concept repository.
type conceptService struct {
	conceptRepository store.ConceptRepository
	logger            *logger.Logger
}

// NewConceptService constructs a [ConceptService] wired to the given
// repository.
func NewConceptService(conceptRepository store.ConceptRepository, logger *logger.Logger) ConceptService {
	return &conceptService{
		conceptRepository: conceptRepository,
		logger:            logger,
	}
}

// Create persists a new concept with an empty word list.
//
// Returns ErrValidationFailed when the owner or the name is empty after
// trimming, and store.ErrDuplicateConcept when the tenant already has a
// concept with this name (the uniqueness constraint also decides
// concurrent create races).
func (s *conceptService) Create(ctx context.Context, username, name, notes string) (models.Concept, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(username) == "" || strings.TrimSpace(name) == "" {
		log.Error().Str("username", username).Str("name", name).Msg("invalid concept data provided")
		return models.Concept{}, ErrValidationFailed
	}

	created, err := s.conceptRepository.CreateConcept(ctx, models.Concept{
		Username: username,
		Name:     name,
		Notes:    notes,
	})
	if err != nil {
		log.Err(err).Str("name", name).Msg("concept creation ended with error")
		return models.Concept{}, fmt.Errorf("concept creation ended with error: %w", err)
	}

	return created, nil
}

func (s *conceptService) GetByID(ctx context.Context, username string, conceptID int64) (models.Concept, error) {
	return s.conceptRepository.GetConceptByID(ctx, username, conceptID)
}

func (s *conceptService) ListAll(ctx context.Context, username string) ([]models.Concept, error) {
	return s.conceptRepository.GetAllConcepts(ctx, username)
}

// Search evaluates the keyword against the tenant's concepts. An empty
// keyword is not a valid call here; the transport layer routes it to
// ListAll instead.
func (s *conceptService) Search(ctx context.Context, username, keyword string) ([]models.Concept, error) {
	if keyword == "" {
		return nil, ErrValidationFailed
	}

	return s.conceptRepository.SearchConcepts(ctx, username, keyword)
}

// Update replaces name and notes of an owned concept; the word list is not
// touched through this path.
func (s *conceptService) Update(ctx context.Context, username string, conceptID int64, name, notes string) (models.Concept, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		log.Error().Int64("concept_id", conceptID).Msg("invalid concept data provided")
		return models.Concept{}, ErrValidationFailed
	}

	return s.conceptRepository.UpdateConcept(ctx, models.Concept{
		ConceptID: conceptID,
		Username:  username,
		Name:      name,
		Notes:     notes,
	})
}

func (s *conceptService) Delete(ctx context.Context, username string, conceptID int64) error {
	return s.conceptRepository.DeleteConcept(ctx, username, conceptID)
}
