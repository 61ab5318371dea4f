package routes

import (
	"github.com/go-chi/chi/v5"

	"linkden/internal/httpserver/deps"
	"linkden/internal/httpserver/handlers"
)

func init() { Register(registerHealthz) }

// healthz is unauthenticated on purpose: probes don't carry the API token.
func registerHealthz(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
}
