package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// read-only routes
	router.Group(func(r chi.Router) {
		r.Get("/api/status", h.getStatus)
		r.Get("/api/batches", h.listBatches)
		r.Get("/api/batches/{name}", h.getBatch)
	})

	// mutating routes
	router.Group(func(r chi.Router) {
		r.Post("/api/upgrade", h.upgrade)
		r.Post("/api/cleanup", h.cleanup)
		r.Post("/api/backup", h.backup)
		r.Post("/api/restore", h.restore)
	})

	return router
}
