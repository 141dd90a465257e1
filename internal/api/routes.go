package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		r.Get("/", s.handleHome)
		r.Get("/reading/{filename}", s.handleReading)
		r.Post("/reading/{filename}/{action}", s.handleReadingAction)
		r.Post("/settings", s.handleUpdateSettingsForm)
		r.Get("/hidden-words", s.handleHiddenWords)
		r.Post("/hidden-words/reset", s.handleResetHiddenWords)

		r.Route("/api", func(r chi.Router) {
			r.Get("/sections", s.handleHome)
			r.Get("/reading/{filename}", s.handleReading)
			r.Post("/reading/{filename}/{action}", s.handleReadingAction)
			r.Get("/settings", s.handleSettings)
			r.Put("/settings", s.handleUpdateSettingsJSON)
			r.Get("/hidden-words", s.handleHiddenWords)
			r.Delete("/hidden-words", s.handleResetHiddenWords)
		})
	})

	return r
}
