package flashcards

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.Generate)
	r.Post("/save-db", h.Save)
	r.Get("/saved", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/pdf", h.RenderPdf)
	return r
}
