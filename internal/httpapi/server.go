package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/isparth/Distributed-Systems/items-api/internal/httpapi/respond"
	"github.com/isparth/Distributed-Systems/items-api/internal/kv"
	"github.com/isparth/Distributed-Systems/items-api/internal/logging"
)

// NewRouter returns the item API handler backed by store.
func NewRouter(store *kv.Store) http.Handler {
	r := chi.NewRouter()

	// shared middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logging.Logger(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "not_found", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" not allowed on "+r.URL.Path)
	})

	// attach routes
	registerRoutes(r, store)

	return r
}
