package flashcards

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/studyforge-lambda/internal/config"
)

type Handler struct {
	service FlashcardService
}

func NewHandler(s FlashcardService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cards, err := h.service.Generate(r.Context(), req)
	if err != nil {
		writeFlashcardError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]any{"flashcards": cards})
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	set, err := h.service.Save(r.Context(), req)
	if err != nil {
		writeFlashcardError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, set)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		writeFlashcardError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	set, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFlashcardError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, set)
}

func (h *Handler) RenderPdf(w http.ResponseWriter, r *http.Request) {
	url, err := h.service.RenderPdf(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFlashcardError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"url": url})
}

func writeFlashcardError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrSetNotFound):
		http.Error(w, "flashcard set not found", http.StatusNotFound)
	case errors.Is(err, ErrTopicRequired), errors.Is(err, ErrNoCards):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrMalformedCards):
		http.Error(w, "could not generate flashcards, try again", http.StatusBadGateway)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro interno em flashcards")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
