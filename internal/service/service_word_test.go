package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/store"
	"github.com/multilang/concept-memo/models"
)

// ─────────────────────────────────────────────
// Mock: store.WordRepository
// ─────────────────────────────────────────────

type mockWordRepository struct {
	createFn  func(ctx context.Context, username string, word models.Word) (models.Word, error)
	listFn    func(ctx context.Context, username string, conceptID int64) ([]models.Word, error)
	getByIDFn func(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error)
	updateFn  func(ctx context.Context, username string, word models.Word) (models.Word, error)
	deleteFn  func(ctx context.Context, username string, conceptID, wordID int64) error
}

func (m *mockWordRepository) CreateWord(ctx context.Context, username string, word models.Word) (models.Word, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, word)
	}
	return word, nil
}

func (m *mockWordRepository) GetWordsByConcept(ctx context.Context, username string, conceptID int64) ([]models.Word, error) {
	if m.listFn != nil {
		return m.listFn(ctx, username, conceptID)
	}
	return nil, nil
}

func (m *mockWordRepository) GetWordByID(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, username, conceptID, wordID)
	}
	return models.Word{}, store.ErrWordNotFound
}

func (m *mockWordRepository) UpdateWord(ctx context.Context, username string, word models.Word) (models.Word, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, username, word)
	}
	return word, nil
}

func (m *mockWordRepository) DeleteWord(ctx context.Context, username string, conceptID, wordID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, username, conceptID, wordID)
	}
	return nil
}

func newTestWordService(repo *mockWordRepository) *wordService {
	return &wordService{
		wordRepository: repo,
		logger:         logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────

func TestWordService_Add_Success(t *testing.T) {
	repo := &mockWordRepository{
		createFn: func(_ context.Context, username string, word models.Word) (models.Word, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, int64(5), word.ConceptID, "path concept id must win over the body")
			word.WordID = 1
			return word, nil
		},
	}
	svc := newTestWordService(repo)

	created, err := svc.Add(context.Background(), "alice", 5, models.Word{Word: "hello", Language: "en", ConceptID: 999})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.WordID)
}

func TestWordService_Add_EmptyWordText(t *testing.T) {
	svc := newTestWordService(&mockWordRepository{})

	_, err := svc.Add(context.Background(), "alice", 5, models.Word{Word: "   "})

	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestWordService_Add_ForeignConcept(t *testing.T) {
	repo := &mockWordRepository{
		createFn: func(_ context.Context, _ string, _ models.Word) (models.Word, error) {
			return models.Word{}, store.ErrConceptNotFound
		},
	}
	svc := newTestWordService(repo)

	_, err := svc.Add(context.Background(), "mallory", 5, models.Word{Word: "hello"})

	require.ErrorIs(t, err, store.ErrConceptNotFound)
}

// ─────────────────────────────────────────────
// Update / Delete
// ─────────────────────────────────────────────

func TestWordService_Update_SetsIdentifiersFromPath(t *testing.T) {
	repo := &mockWordRepository{
		updateFn: func(_ context.Context, username string, word models.Word) (models.Word, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, int64(5), word.ConceptID)
			assert.Equal(t, int64(7), word.WordID)
			return word, nil
		},
	}
	svc := newTestWordService(repo)

	updated, err := svc.Update(context.Background(), "alice", 5, 7, models.Word{Word: "hallo", Language: "de"})

	require.NoError(t, err)
	assert.Equal(t, "hallo", updated.Word)
}

func TestWordService_Update_EmptyWordText(t *testing.T) {
	svc := newTestWordService(&mockWordRepository{})

	_, err := svc.Update(context.Background(), "alice", 5, 7, models.Word{Word: ""})

	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestWordService_Delete_NotFound(t *testing.T) {
	repo := &mockWordRepository{
		deleteFn: func(_ context.Context, _ string, _, _ int64) error {
			return store.ErrWordNotFound
		},
	}
	svc := newTestWordService(repo)

	err := svc.Delete(context.Background(), "alice", 5, 404)

	require.ErrorIs(t, err, store.ErrWordNotFound)
}
