package gform

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

type Handler struct {
	service GFormService
}

func NewHandler(s GFormService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var def quizsession.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.service.Create(r.Context(), def)
	if err != nil {
		writeGFormError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, rec)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.service.Save(r.Context(), req)
	if err != nil {
		writeGFormError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, rec)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.List(r.Context())
	if err != nil {
		writeGFormError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, recs)
}

func (h *Handler) Responses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.service.Responses(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		writeGFormError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	review, err := h.service.Review(r.Context(), req)
	if err != nil {
		writeGFormError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, review)
}

func (h *Handler) SavePdfURL(w http.ResponseWriter, r *http.Request) {
	var req SavePdfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pdf, err := h.service.SavePdfURL(r.Context(), req)
	if err != nil {
		writeGFormError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, pdf)
}

func (h *Handler) ListPdfURLs(w http.ResponseWriter, r *http.Request) {
	pdfs, err := h.service.ListPdfURLs(r.Context())
	if err != nil {
		writeGFormError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, pdfs)
}

func writeGFormError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrFormNotFound), errors.Is(err, ErrResponseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrURLRequired),
		errors.Is(err, quizsession.ErrNoQuestions),
		errors.Is(err, quizsession.ErrNoOptions):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrMissingTokens), errors.Is(err, ErrDecryptionFailed):
		http.Error(w, "google account is not connected", http.StatusForbidden)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro interno na integração com o Forms")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
