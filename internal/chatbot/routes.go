package chatbot

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/send-message", h.SendMessage)
	r.Get("/history", h.History)
	r.Post("/process-pdf", h.ProcessDocument)
	return r
}
