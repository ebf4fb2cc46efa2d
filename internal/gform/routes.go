package gform

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/create", h.Create)
	r.Post("/save", h.Save)
	r.Get("/forms", h.List)
	r.Post("/review", h.Review)
	r.Post("/save-pdf-url", h.SavePdfURL)
	r.Get("/pdf-urls", h.ListPdfURLs)
	r.Get("/{formID}/responses", h.Responses)
	return r
}
