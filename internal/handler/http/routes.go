package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/verify-token", h.verifyToken)
		r.Post("/api/auth/logout", h.logout)
	})

	// tenant-scoped routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/concepts", func(r chi.Router) {
			r.Get("/", h.listConcepts)
			r.Post("/", h.createConcept)

			r.Route("/{conceptID}", func(r chi.Router) {
				r.Get("/", h.getConcept)
				r.Put("/", h.updateConcept)
				r.Delete("/", h.deleteConcept)

				r.Route("/words", func(r chi.Router) {
					r.Get("/", h.listWords)
					r.Post("/", h.createWord)
					r.Get("/{wordID}", h.getWord)
					r.Put("/{wordID}", h.updateWord)
					r.Delete("/{wordID}", h.deleteWord)
				})
			})
		})
	})

	return router
}
