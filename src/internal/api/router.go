package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/ioc-diff/src/internal/config"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(cfg *config.Config, version VersionInfo) (http.Handler, error) {
	allowedClients, err := AllowedClients(cfg.Server.AllowedClients)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(allowedClients)
	r.Use(CORS)
	r.Use(JSONContentType)

	h := NewHandler(cfg, version)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/compare", h.Compare)
		r.Post("/classify", h.Classify)
		r.Get("/health", h.Health)
	})

	return r, nil
}
