package quizgen

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyforge/studyforge-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateFromTopic(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	def, err := h.service.GenerateFromTopic(r.Context(), req)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, def)
}

func (h *Handler) GenerateFromFlashcards(w http.ResponseWriter, r *http.Request) {
	var req FromFlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	def, err := h.service.GenerateFromFlashcards(r.Context(), req)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, def)
}

func (h *Handler) GenerateFromNotes(w http.ResponseWriter, r *http.Request) {
	var req FromNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	def, err := h.service.GenerateFromNotes(r.Context(), req)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, def)
}

func writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrTopicRequired),
		errors.Is(err, ErrInvalidDifficulty),
		errors.Is(err, ErrNoSourceMaterial):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Falha ao gerar quiz")
		http.Error(w, "failed to generate quiz", http.StatusInternalServerError)
	}
}
