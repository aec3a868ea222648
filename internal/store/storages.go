package store

import (
	"github.com/multilang/concept-memo/internal/logger"
)

// Storages bundles all repositories for injection into the service layer.
type Storages struct {
	UserRepository    UserRepository
	ConceptRepository ConceptRepository
	WordRepository    WordRepository
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ConceptRepository: NewConceptRepository(db, logger),
		WordRepository:    NewWordRepository(db, logger),
	}
}
