package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/models"
)

// wordRepository is the PostgreSQL-backed implementation of
// [WordRepository]. Every statement joins through the concepts table, so a
// word is only reachable by the tenant owning its concept.
type wordRepository struct {
	*DB
	logger *logger.Logger
}

// NewWordRepository constructs a [WordRepository] backed by the provided
// database connection and logger.
func NewWordRepository(db *DB, logger *logger.Logger) WordRepository {
	logger.Debug().Msg("WordRepository created")
	return &wordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *wordRepository) CreateWord(ctx context.Context, username string, word models.Word) (models.Word, error) {
	log := logger.FromContext(ctx)

	// INSERT ... SELECT keeps the ownership check and the insert in one
	// statement: no row comes back when the concept is absent or owned by
	// another tenant.
	row := r.DB.QueryRowContext(ctx, createWord,
		username, word.ConceptID, word.Word, word.Language, word.IPA, word.Nuance)

	var created models.Word
	if err := row.Scan(&created.WordID, &created.ConceptID, &created.Word, &created.Language, &created.IPA, &created.Nuance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Word{}, ErrConceptNotFound
		}

		log.Err(err).Str("func", "*wordRepository.CreateWord").Int64("concept_id", word.ConceptID).Msg("error creating word")
		return models.Word{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *wordRepository) GetWordsByConcept(ctx context.Context, username string, conceptID int64) ([]models.Word, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.DB.QueryRowContext(ctx, conceptExists, username, conceptID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*wordRepository.GetWordsByConcept").Int64("concept_id", conceptID).Msg("error checking concept ownership")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists {
		return nil, ErrConceptNotFound
	}

	rows, err := r.DB.QueryContext(ctx, getWordsByConcept, username, conceptID)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.GetWordsByConcept").Int64("concept_id", conceptID).Msg("failed to execute words query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	words := make([]models.Word, 0, 8)

	for rows.Next() {
		var word models.Word

		if scanErr := rows.Scan(&word.WordID, &word.ConceptID, &word.Word, &word.Language, &word.IPA, &word.Nuance); scanErr != nil {
			log.Err(scanErr).Str("func", "*wordRepository.GetWordsByConcept").Msg("failed to scan word row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		words = append(words, word)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*wordRepository.GetWordsByConcept").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return words, nil
}

func (r *wordRepository) GetWordByID(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getWordByID, username, conceptID, wordID)

	var word models.Word
	if err := row.Scan(&word.WordID, &word.ConceptID, &word.Word, &word.Language, &word.IPA, &word.Nuance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Word{}, ErrWordNotFound
		}

		log.Err(err).Str("func", "*wordRepository.GetWordByID").Int64("word_id", wordID).Msg("error scanning word row")
		return models.Word{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return word, nil
}

func (r *wordRepository) UpdateWord(ctx context.Context, username string, word models.Word) (models.Word, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateWord,
		username, word.ConceptID, word.WordID, word.Word, word.Language, word.IPA, word.Nuance)

	var updated models.Word
	if err := row.Scan(&updated.WordID, &updated.ConceptID, &updated.Word, &updated.Language, &updated.IPA, &updated.Nuance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Word{}, ErrWordNotFound
		}

		log.Err(err).Str("func", "*wordRepository.UpdateWord").Int64("word_id", word.WordID).Msg("error updating word")
		return models.Word{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *wordRepository) DeleteWord(ctx context.Context, username string, conceptID, wordID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteWord, username, conceptID, wordID)
	if err != nil {
		log.Err(err).Str("func", "*wordRepository.DeleteWord").Int64("word_id", wordID).Msg("error deleting word")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrWordNotFound
	}

	return nil
}
