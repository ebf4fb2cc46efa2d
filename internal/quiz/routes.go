package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/attempts", h.StartAttempt)
	r.Get("/attempts/{id}", h.GetAttempt)
	r.Post("/attempts/{id}/answer", h.SelectAnswer)
	r.Post("/attempts/{id}/next", h.Next)
	r.Post("/attempts/{id}/previous", h.Previous)
	r.Post("/attempts/{id}/retake", h.Retake)
	r.Get("/attempts/{id}/result", h.Result)
	r.Get("/history", h.History)
	return r
}
