package notes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/studyforge-lambda/internal/codeexec"
	"github.com/studyforge/studyforge-lambda/internal/config"
)

type Handler struct {
	service NoteService
}

func NewHandler(s NoteService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sections, err := h.service.Generate(r.Context(), req)
	if err != nil {
		writeNoteError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]any{"sections": sections})
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	set, err := h.service.Save(r.Context(), req)
	if err != nil {
		writeNoteError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, set)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		writeNoteError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	set, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeNoteError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, set)
}

func (h *Handler) RenderPdf(w http.ResponseWriter, r *http.Request) {
	url, err := h.service.RenderPdf(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeNoteError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *Handler) RunCode(w http.ResponseWriter, r *http.Request) {
	var req codeexec.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.RunCode(r.Context(), req)
	if err != nil {
		writeNoteError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func writeNoteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrSetNotFound):
		http.Error(w, "note set not found", http.StatusNotFound)
	case errors.Is(err, ErrTopicRequired), errors.Is(err, ErrNoSections),
		errors.Is(err, codeexec.ErrUnsupportedLanguage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrMalformedSections):
		http.Error(w, "could not generate notes, try again", http.StatusBadGateway)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro interno em notas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
