// Package seed inserts a demonstration concept on first startup so that a
// fresh installation is not empty. It is an explicit bootstrap function
// taking its collaborators as arguments; no package-level state.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/service"
	"github.com/multilang/concept-memo/internal/store"
	"github.com/multilang/concept-memo/models"
)

// demoWords are the cross-language words of the single demonstration
// concept. Searching for "Promise", "非同期" or "async" all resolve to the
// same entry, which is the point of the demo.
var demoWords = []models.Word{
	{Word: "Promise", Language: "English", IPA: "/ˈprɒmɪs/", Nuance: "A future value produced by async code"},
	{Word: "async", Language: "English", IPA: "/ˈeɪsɪŋk/", Nuance: "Short for asynchronous; non-blocking execution"},
	{Word: "非同期", Language: "Japanese", IPA: "ひどうき", Nuance: "メインスレッドをブロックしない処理"},
	{Word: "asynchrone", Language: "French", IPA: "/asingkʁon/", Nuance: "Traitement non bloquant"},
}

const (
	demoConceptName  = "非同期処理"
	demoConceptNotes = "async / Promise — operations that run independently of the main program flow. " +
		"A Promise is a value that will be resolved in the future without blocking execution."
)

// Seed inserts the demonstration concept for the given tenant when that
// tenant owns no concepts yet. Called once at process start; an already
// populated tenant makes it a no-op.
func Seed(ctx context.Context, concepts service.ConceptService, words service.WordService, username string, log *logger.Logger) error {
	existing, err := concepts.ListAll(ctx, username)
	if err != nil {
		return fmt.Errorf("seed: listing concepts failed: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Str("username", username).Msg("seed skipped, tenant already has concepts")
		return nil
	}

	concept, err := concepts.Create(ctx, username, demoConceptName, demoConceptNotes)
	if err != nil {
		// A parallel instance may have seeded between the check and the
		// insert; the unique constraint makes that harmless.
		if errors.Is(err, store.ErrDuplicateConcept) {
			return nil
		}
		return fmt.Errorf("seed: creating demo concept failed: %w", err)
	}

	for _, word := range demoWords {
		if _, err := words.Add(ctx, username, concept.ConceptID, word); err != nil {
			return fmt.Errorf("seed: adding demo word %q failed: %w", word.Word, err)
		}
	}

	log.Info().Str("username", username).Int64("concept_id", concept.ConceptID).Msg("demo concept seeded")
	return nil
}
