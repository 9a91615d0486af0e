package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// The relay is an open local endpoint for the companion client; CORS is
	// wide open on purpose.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
	}))

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	// generative endpoints are rate limited per client IP
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/chat", h.chat)
		r.Post("/api/tts", h.tts)
	})

	return router
}
