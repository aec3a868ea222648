package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/models"
)

// conceptRepository is the PostgreSQL-backed implementation of
// [ConceptRepository].
//
// Aggregates are always loaded in two fixed steps: one query for the
// concept rows, one batched query for all their words, stitched in memory.
// The number of round-trips is constant regardless of how many concepts or
// words are involved.
type conceptRepository struct {
	*DB
	logger *logger.Logger
}

// NewConceptRepository constructs a [ConceptRepository] backed by the
// provided database connection and logger.
func NewConceptRepository(db *DB, logger *logger.Logger) ConceptRepository {
	logger.Debug().Msg("ConceptRepository created")
	return &conceptRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *conceptRepository) CreateConcept(ctx context.Context, concept models.Concept) (models.Concept, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createConcept, concept.Username, concept.Name, concept.Notes)

	var created models.Concept
	if err := row.Scan(&created.ConceptID, &created.Username, &created.Name, &created.Notes); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Concept{}, ErrDuplicateConcept
		}

		log.Err(err).Str("func", "*conceptRepository.CreateConcept").Str("name", concept.Name).Msg("error creating concept")
		return models.Concept{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	created.Words = make([]models.Word, 0)
	return created, nil
}

func (r *conceptRepository) GetConceptByID(ctx context.Context, username string, conceptID int64) (models.Concept, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getConceptByID, username, conceptID)

	var concept models.Concept
	if err := row.Scan(&concept.ConceptID, &concept.Username, &concept.Name, &concept.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Concept{}, ErrConceptNotFound
		}

		log.Err(err).Str("func", "*conceptRepository.GetConceptByID").Int64("concept_id", conceptID).Msg("error scanning concept row")
		return models.Concept{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	concepts, err := r.attachWords(ctx, []models.Concept{concept})
	if err != nil {
		return models.Concept{}, err
	}

	return concepts[0], nil
}

func (r *conceptRepository) GetAllConcepts(ctx context.Context, username string) ([]models.Concept, error) {
	concepts, err := r.queryConcepts(ctx, getAllConcepts, username)
	if err != nil {
		return nil, err
	}

	return r.attachWords(ctx, concepts)
}

func (r *conceptRepository) SearchConcepts(ctx context.Context, username, keyword string) ([]models.Concept, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchConceptsQuery(username, keyword)
	if err != nil {
		log.Err(err).Str("func", "*conceptRepository.SearchConcepts").Msg("failed to build search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	concepts, err := r.queryConcepts(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return r.attachWords(ctx, concepts)
}

func (r *conceptRepository) UpdateConcept(ctx context.Context, concept models.Concept) (models.Concept, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateConcept, concept.Username, concept.ConceptID, concept.Name, concept.Notes)

	var updated models.Concept
	if err := row.Scan(&updated.ConceptID, &updated.Username, &updated.Name, &updated.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Concept{}, ErrConceptNotFound
		}

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Concept{}, ErrDuplicateConcept
		}

		log.Err(err).Str("func", "*conceptRepository.UpdateConcept").Int64("concept_id", concept.ConceptID).Msg("error updating concept")
		return models.Concept{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	concepts, err := r.attachWords(ctx, []models.Concept{updated})
	if err != nil {
		return models.Concept{}, err
	}

	return concepts[0], nil
}

func (r *conceptRepository) DeleteConcept(ctx context.Context, username string, conceptID int64) error {
	log := logger.FromContext(ctx)

	// Words go with the concept via the ON DELETE CASCADE constraint.
	result, err := r.DB.ExecContext(ctx, deleteConcept, username, conceptID)
	if err != nil {
		log.Err(err).Str("func", "*conceptRepository.DeleteConcept").Int64("concept_id", conceptID).Msg("error deleting concept")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrConceptNotFound
	}

	return nil
}

// queryConcepts runs a concept-row query and scans the result set. Word
// lists are left for attachWords.
func (r *conceptRepository) queryConcepts(ctx context.Context, query string, args ...any) ([]models.Concept, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*conceptRepository.queryConcepts").Msg("failed to execute concepts query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	concepts := make([]models.Concept, 0, 16)

	for rows.Next() {
		var concept models.Concept

		if scanErr := rows.Scan(&concept.ConceptID, &concept.Username, &concept.Name, &concept.Notes); scanErr != nil {
			log.Err(scanErr).Str("func", "*conceptRepository.queryConcepts").Msg("failed to scan concept row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		concepts = append(concepts, concept)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*conceptRepository.queryConcepts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return concepts, nil
}

// attachWords loads the words of every concept in the slice with a single
// `concept_id = ANY($1)` query and stitches them onto their parents. Each
// concept ends up with a non-nil word list, empty when it has no words.
func (r *conceptRepository) attachWords(ctx context.Context, concepts []models.Concept) ([]models.Concept, error) {
	log := logger.FromContext(ctx)

	if len(concepts) == 0 {
		return concepts, nil
	}

	ids := make([]int64, 0, len(concepts))
	byID := make(map[int64]*models.Concept, len(concepts))
	for i := range concepts {
		concepts[i].Words = make([]models.Word, 0, 4)
		ids = append(ids, concepts[i].ConceptID)
		byID[concepts[i].ConceptID] = &concepts[i]
	}

	rows, err := r.DB.QueryContext(ctx, getWordsForConcepts, ids)
	if err != nil {
		log.Err(err).Str("func", "*conceptRepository.attachWords").Int("concepts", len(concepts)).Msg("failed to execute batched words query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var word models.Word

		if scanErr := rows.Scan(&word.WordID, &word.ConceptID, &word.Word, &word.Language, &word.IPA, &word.Nuance); scanErr != nil {
			log.Err(scanErr).Str("func", "*conceptRepository.attachWords").Msg("failed to scan word row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if parent, ok := byID[word.ConceptID]; ok {
			parent.Words = append(parent.Words, word)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*conceptRepository.attachWords").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return concepts, nil
}
