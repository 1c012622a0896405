package httpapi

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/isparth/Distributed-Systems/items-api/internal/httpapi/respond"
	"github.com/isparth/Distributed-Systems/items-api/internal/kv"
	"github.com/isparth/Distributed-Systems/items-api/internal/types"
)

func handleRoot() http.HandlerFunc {
	greeting := types.Greeting{Hello: "World"}

	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, greeting)
	}
}

func handleGetItem(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := itemKey(r)

		// Get only fails with *kv.NotFoundError.
		name, err := store.Get(key)
		if err != nil {
			respond.NotFound(w, key, err.Error())
			return
		}
		respond.JSON(w, http.StatusOK, types.ItemResponse{Item: name})
	}
}

// itemKey returns the item_id path segment as the store key. chi matches on
// r.URL.RawPath when it is set, so only then is the segment still escaped.
func itemKey(r *http.Request) string {
	key := chi.URLParam(r, "item_id")
	if r.URL.RawPath == "" {
		return key
	}
	if unescaped, err := url.PathUnescape(key); err == nil {
		return unescaped
	}
	return key
}

func handlePostItem(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := DecodeItem(r.Body)
		if err != nil {
			respond.Error(w, http.StatusUnprocessableEntity, "unprocessable_entity", err.Error())
			return
		}

		store.Put(item.Index, item.Name)
		respond.JSON(w, http.StatusCreated, item)
	}
}
