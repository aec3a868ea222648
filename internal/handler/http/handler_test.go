package http

import (
	"context"
	"net/http"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/service"
	"github.com/multilang/concept-memo/models"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockSessionService struct {
	registerFn   func(ctx context.Context, username string) (models.User, error)
	verifyFn     func(ctx context.Context, token string) (models.User, error)
	invalidateFn func(ctx context.Context, token string) error
}

func (m *mockSessionService) Register(ctx context.Context, username string) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, username)
	}
	return models.User{Username: username, Token: "test-token"}, nil
}

func (m *mockSessionService) VerifyAndRenew(ctx context.Context, token string) (models.User, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, token)
	}
	return models.User{Username: "alice", Token: token}, nil
}

func (m *mockSessionService) Invalidate(ctx context.Context, token string) error {
	if m.invalidateFn != nil {
		return m.invalidateFn(ctx, token)
	}
	return nil
}

type mockConceptService struct {
	createFn  func(ctx context.Context, username, name, notes string) (models.Concept, error)
	getByIDFn func(ctx context.Context, username string, conceptID int64) (models.Concept, error)
	listAllFn func(ctx context.Context, username string) ([]models.Concept, error)
	searchFn  func(ctx context.Context, username, keyword string) ([]models.Concept, error)
	updateFn  func(ctx context.Context, username string, conceptID int64, name, notes string) (models.Concept, error)
	deleteFn  func(ctx context.Context, username string, conceptID int64) error
}

func (m *mockConceptService) Create(ctx context.Context, username, name, notes string) (models.Concept, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, name, notes)
	}
	return models.Concept{ConceptID: 1, Username: username, Name: name, Notes: notes, Words: []models.Word{}}, nil
}

func (m *mockConceptService) GetByID(ctx context.Context, username string, conceptID int64) (models.Concept, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, username, conceptID)
	}
	return models.Concept{ConceptID: conceptID, Username: username, Words: []models.Word{}}, nil
}

func (m *mockConceptService) ListAll(ctx context.Context, username string) ([]models.Concept, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, username)
	}
	return []models.Concept{}, nil
}

func (m *mockConceptService) Search(ctx context.Context, username, keyword string) ([]models.Concept, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, username, keyword)
	}
	return []models.Concept{}, nil
}

func (m *mockConceptService) Update(ctx context.Context, username string, conceptID int64, name, notes string) (models.Concept, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, username, conceptID, name, notes)
	}
	return models.Concept{ConceptID: conceptID, Username: username, Name: name, Notes: notes, Words: []models.Word{}}, nil
}

func (m *mockConceptService) Delete(ctx context.Context, username string, conceptID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, username, conceptID)
	}
	return nil
}

type mockWordService struct {
	addFn    func(ctx context.Context, username string, conceptID int64, word models.Word) (models.Word, error)
	listFn   func(ctx context.Context, username string, conceptID int64) ([]models.Word, error)
	getFn    func(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error)
	updateFn func(ctx context.Context, username string, conceptID, wordID int64, word models.Word) (models.Word, error)
	deleteFn func(ctx context.Context, username string, conceptID, wordID int64) error
}

func (m *mockWordService) Add(ctx context.Context, username string, conceptID int64, word models.Word) (models.Word, error) {
	if m.addFn != nil {
		return m.addFn(ctx, username, conceptID, word)
	}
	word.WordID = 1
	word.ConceptID = conceptID
	return word, nil
}

func (m *mockWordService) ListByConcept(ctx context.Context, username string, conceptID int64) ([]models.Word, error) {
	if m.listFn != nil {
		return m.listFn(ctx, username, conceptID)
	}
	return []models.Word{}, nil
}

func (m *mockWordService) GetByID(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error) {
	if m.getFn != nil {
		return m.getFn(ctx, username, conceptID, wordID)
	}
	return models.Word{WordID: wordID, ConceptID: conceptID}, nil
}

func (m *mockWordService) Update(ctx context.Context, username string, conceptID, wordID int64, word models.Word) (models.Word, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, username, conceptID, wordID, word)
	}
	word.WordID = wordID
	word.ConceptID = conceptID
	return word, nil
}

func (m *mockWordService) Delete(ctx context.Context, username string, conceptID, wordID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, username, conceptID, wordID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(session *mockSessionService, concepts *mockConceptService, words *mockWordService) *Handler {
	if session == nil {
		session = &mockSessionService{}
	}
	if concepts == nil {
		concepts = &mockConceptService{}
	}
	if words == nil {
		words = &mockWordService{}
	}

	return NewHandler(&service.Services{
		SessionService: session,
		ConceptService: concepts,
		WordService:    words,
	}, logger.Nop())
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
