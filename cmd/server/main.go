package main

import (
	"context"
	"fmt"

	"github.com/multilang/concept-memo/internal/config"
	httphandler "github.com/multilang/concept-memo/internal/handler/http"
	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/seed"
	"github.com/multilang/concept-memo/internal/server"
	"github.com/multilang/concept-memo/internal/service"
	"github.com/multilang/concept-memo/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("memo-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	if cfg.App.SeedDemoUser != "" {
		if err := seed.Seed(ctx, services.ConceptService, services.WordService, cfg.App.SeedDemoUser, log); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo data")
		}
	}

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
