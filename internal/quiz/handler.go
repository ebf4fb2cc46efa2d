package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	var def quizsession.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.service.StartAttempt(r.Context(), def)
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, state)
}

func (h *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetAttempt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, state)
}

func (h *Handler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OptionIndex *int `json:"optionIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.OptionIndex == nil {
		http.Error(w, "optionIndex is required", http.StatusBadRequest)
		return
	}

	state, err := h.service.SelectAnswer(r.Context(), chi.URLParam(r, "id"), *payload.OptionIndex)
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, state)
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Next(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, state)
}

func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Previous(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, state)
}

func (h *Handler) Retake(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Retake(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, state)
}

func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context())
	if err != nil {
		writeAttemptError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, records)
}

func writeAttemptError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrAttemptNotFound):
		http.Error(w, "attempt not found", http.StatusNotFound)
	case errors.Is(err, quizsession.ErrAnswerRequired):
		// Falha de validação recuperável: o cliente exibe o aviso e o
		// estado da tentativa permanece inalterado.
		http.Error(w, "an answer is required before proceeding", http.StatusUnprocessableEntity)
	case errors.Is(err, quizsession.ErrOptionOutOfRange),
		errors.Is(err, quizsession.ErrNoQuestions),
		errors.Is(err, quizsession.ErrNoOptions):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, quizsession.ErrCompleted):
		http.Error(w, "quiz attempt already completed", http.StatusConflict)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro interno em tentativa de quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
