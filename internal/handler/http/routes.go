package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// the remote replica of the notes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/notes/", h.fetchNotes)
		r.Post("/api/notes/", h.createNote)
		r.Put("/api/notes/{id}", h.updateNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
