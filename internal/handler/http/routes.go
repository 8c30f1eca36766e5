package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/sync", func(r chi.Router) {
		r.Get("/updates", h.getUpdates)
		r.Get("/entries/{id}", h.getEntry)
		r.With(h.commitHashing).Post("/commit", h.commit)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
