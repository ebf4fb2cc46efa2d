package community

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/create", h.Create)
	r.Post("/subscribe", h.Subscribe)
	r.Get("/subscribed-communities", h.Subscribed)
	r.Post("/share-note", h.ShareNote)
	r.Get("/{code}", h.Fetch)
	r.Get("/{code}/shared-notes", h.SharedNotes)
	return r
}
