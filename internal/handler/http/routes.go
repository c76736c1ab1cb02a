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
	router.Use(withCORS)
	router.Use(withGZip)

	router.Get("/api/config", h.getConfig)
	router.Put("/api/config", h.updateConfig)
	router.Get("/api/health", h.health)
	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
