package community

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/notes"
)

type Handler struct {
	service CommunityService
}

func NewHandler(s CommunityService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeCommunityError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.service.Subscribe(r.Context(), req.CommunityID)
	if err != nil {
		writeCommunityError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) Subscribed(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.Subscribed(r.Context())
	if err != nil {
		writeCommunityError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, dtos)
}

func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	dto, err := h.service.Fetch(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeCommunityError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, dto)
}

func (h *Handler) ShareNote(w http.ResponseWriter, r *http.Request) {
	var req ShareNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	shared, err := h.service.ShareNote(r.Context(), req)
	if err != nil {
		writeCommunityError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, shared)
}

func (h *Handler) SharedNotes(w http.ResponseWriter, r *http.Request) {
	shared, err := h.service.SharedNotes(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeCommunityError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, shared)
}

func writeCommunityError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, notes.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrCommunityNotFound):
		http.Error(w, "community not found", http.StatusNotFound)
	case errors.Is(err, notes.ErrSetNotFound):
		http.Error(w, "note set not found", http.StatusNotFound)
	case errors.Is(err, ErrNameRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAlreadyMember):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotMember):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro interno em comunidades")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
