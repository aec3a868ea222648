package service

import (
	"context"
	"strings"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/store"
	"github.com/multilang/concept-memo/models"
)

// wordService is the concrete implementation of [WordService].
type wordService struct {
	wordRepository store.WordRepository
	logger         *logger.Logger
}

// NewWordService constructs a [WordService] wired to the given repository.
func NewWordService(wordRepository store.WordRepository, logger *logger.Logger) WordService {
	return &wordService{
		wordRepository: wordRepository,
		logger:         logger,
	}
}

// Add attaches a new word to an owned concept. The word text is required;
// an absent or foreign concept surfaces as store.ErrConceptNotFound.
func (s *wordService) Add(ctx context.Context, username string, conceptID int64, word models.Word) (models.Word, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(word.Word) == "" {
		log.Error().Int64("concept_id", conceptID).Msg("invalid word data provided")
		return models.Word{}, ErrValidationFailed
	}

	word.ConceptID = conceptID
	return s.wordRepository.CreateWord(ctx, username, word)
}

func (s *wordService) ListByConcept(ctx context.Context, username string, conceptID int64) ([]models.Word, error) {
	return s.wordRepository.GetWordsByConcept(ctx, username, conceptID)
}

func (s *wordService) GetByID(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error) {
	return s.wordRepository.GetWordByID(ctx, username, conceptID, wordID)
}

func (s *wordService) Update(ctx context.Context, username string, conceptID, wordID int64, word models.Word) (models.Word, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(word.Word) == "" {
		log.Error().Int64("word_id", wordID).Msg("invalid word data provided")
		return models.Word{}, ErrValidationFailed
	}

	word.ConceptID = conceptID
	word.WordID = wordID
	return s.wordRepository.UpdateWord(ctx, username, word)
}

func (s *wordService) Delete(ctx context.Context, username string, conceptID, wordID int64) error {
	return s.wordRepository.DeleteWord(ctx, username, conceptID, wordID)
}
