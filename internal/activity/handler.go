package activity

import (
	"net/http"

	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/flashcards"
	"github.com/studyforge/studyforge-lambda/internal/gform"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/quiz"
)

type Handler struct {
	service ActivityService
}

func NewHandler(s ActivityService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		switch err {
		case flashcards.ErrUnauthorized, notes.ErrUnauthorized, gform.ErrUnauthorized, quiz.ErrUnauthorized:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			config.WithContext(r.Context()).WithError(err).Error("Erro interno no painel de atividade")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}
	config.JSON(w, http.StatusOK, dashboard)
}
