package service

import (
	"context"

	"github.com/multilang/concept-memo/models"
)

// SessionService owns the token-based session lifecycle: registration,
// verification with renew-on-touch, and soft revocation.
type SessionService interface {
	// Register creates a session for the username, reactivating an expired
	// record in place when one exists.
	Register(ctx context.Context, username string) (models.User, error)

	// VerifyAndRenew resolves a bearer token to its user and slides the
	// expiry forward. Every successful verification is also a keep-alive.
	VerifyAndRenew(ctx context.Context, token string) (models.User, error)

	// Invalidate soft-revokes the session holding the token. Idempotent.
	Invalidate(ctx context.Context, token string) error
}

// ConceptService exposes tenant-scoped CRUD and search over concept
// aggregates. Every method takes the owner username resolved by the
// authentication layer.
type ConceptService interface {
	Create(ctx context.Context, username, name, notes string) (models.Concept, error)
	GetByID(ctx context.Context, username string, conceptID int64) (models.Concept, error)
	ListAll(ctx context.Context, username string) ([]models.Concept, error)
	Search(ctx context.Context, username, keyword string) ([]models.Concept, error)
	Update(ctx context.Context, username string, conceptID int64, name, notes string) (models.Concept, error)
	Delete(ctx context.Context, username string, conceptID int64) error
}

// WordService exposes CRUD over the owned words of a concept, always
// checked through the owning concept's tenant.
type WordService interface {
	Add(ctx context.Context, username string, conceptID int64, word models.Word) (models.Word, error)
	ListByConcept(ctx context.Context, username string, conceptID int64) ([]models.Word, error)
	GetByID(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error)
	Update(ctx context.Context, username string, conceptID, wordID int64, word models.Word) (models.Word, error)
	Delete(ctx context.Context, username string, conceptID, wordID int64) error
}
