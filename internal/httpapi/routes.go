package httpapi

import (
	"github.com/go-chi/chi/v5"

	"github.com/isparth/Distributed-Systems/items-api/internal/kv"
)

func registerRoutes(r chi.Router, store *kv.Store) {
	r.Get("/", handleRoot())
	r.Route("/items", func(r chi.Router) {
		r.Post("/", handlePostItem(store))
		r.Get("/{item_id}", handleGetItem(store))
	})
}
