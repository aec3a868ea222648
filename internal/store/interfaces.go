package store

import (
	"context"
	"time"

	"github.com/multilang/concept-memo/models"
)

// UserRepository owns the session records. All expiry-sensitive transitions
// are single conditional UPDATE statements so that concurrent renewals and
// reactivations cannot act on a stale expiry check.
type UserRepository interface {
	// CreateUser inserts a fresh user row. Fails with [ErrUsernameTaken] or
	// [ErrTokenCollision] on the respective unique constraints.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user row for the given username,
	// regardless of its expiry state.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken returns the user row holding the given token,
	// regardless of its expiry state.
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// ReactivateUser rotates the token and extends the expiry of an
	// expired user row in place. The update only applies while the row is
	// expired; a concurrent registration that got there first surfaces as
	// [ErrUserNotFound].
	ReactivateUser(ctx context.Context, username, token string, expiresAt time.Time) (models.User, error)

	// RenewUserByToken slides the expiry of a live session forward. The
	// expiry check and the write are one atomic statement; a missing or
	// already-expired row surfaces as [ErrUserNotFound].
	RenewUserByToken(ctx context.Context, token string, expiresAt time.Time) (models.User, error)

	// ExpireUserByToken back-dates the expiry of the row holding the given
	// token. Idempotent; an absent token is not an error.
	ExpireUserByToken(ctx context.Context, token string, expiresAt time.Time) error
}

// ConceptRepository owns concept aggregates. Every operation is scoped by
// the tenant username; there is no lookup path without a tenant filter.
// All read operations return concepts with their full word list attached,
// fetched in one pass (parent query plus a single batched child query).
type ConceptRepository interface {
	CreateConcept(ctx context.Context, concept models.Concept) (models.Concept, error)
	GetConceptByID(ctx context.Context, username string, conceptID int64) (models.Concept, error)
	GetAllConcepts(ctx context.Context, username string) ([]models.Concept, error)

	// SearchConcepts returns the deduplicated set of the tenant's concepts
	// whose name, notes, or any associated word contains the keyword.
	SearchConcepts(ctx context.Context, username, keyword string) ([]models.Concept, error)

	// UpdateConcept replaces name and notes of an owned concept. The word
	// list is unaffected.
	UpdateConcept(ctx context.Context, concept models.Concept) (models.Concept, error)

	// DeleteConcept removes an owned concept; the schema cascades the
	// delete to its words.
	DeleteConcept(ctx context.Context, username string, conceptID int64) error
}

// WordRepository manages the owned word entities of a concept. Tenant
// isolation is enforced by joining through the owning concept on every
// statement.
type WordRepository interface {
	CreateWord(ctx context.Context, username string, word models.Word) (models.Word, error)
	GetWordsByConcept(ctx context.Context, username string, conceptID int64) ([]models.Word, error)
	GetWordByID(ctx context.Context, username string, conceptID, wordID int64) (models.Word, error)
	UpdateWord(ctx context.Context, username string, word models.Word) (models.Word, error)
	DeleteWord(ctx context.Context, username string, conceptID, wordID int64) error
}
