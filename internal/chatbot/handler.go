package chatbot

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyforge/studyforge-lambda/internal/config"
)

type Handler struct {
	service ChatService
}

func NewHandler(s ChatService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := h.service.SendMessage(r.Context(), req.Message)
	if err != nil {
		writeChatError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, reply)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.service.History(r.Context())
	if err != nil {
		writeChatError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, msgs)
}

func (h *Handler) ProcessDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ProcessDocument(r.Context(), req.Name, req.Text); err != nil {
		writeChatError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, map[string]string{"status": "processed"})
}

func writeChatError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrMessageRequired), errors.Is(err, ErrTextRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro interno no chatbot")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
