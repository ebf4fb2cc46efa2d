package quizgen

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.GenerateFromTopic)
	r.Post("/generate-from-flashcards", h.GenerateFromFlashcards)
	r.Post("/generate-from-notes", h.GenerateFromNotes)
	return r
}
