package service

import (
	"github.com/multilang/concept-memo/internal/config"
	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/store"
)

type Services struct {
	SessionService SessionService
	ConceptService ConceptService
	WordService    WordService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SessionService: NewSessionService(storages.UserRepository, cfg.App, logger),
		ConceptService: NewConceptService(storages.ConceptRepository, logger),
		WordService:    NewWordService(storages.WordRepository, logger),
	}
}
