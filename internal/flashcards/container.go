package flashcards

import (
	"github.com/studyforge/studyforge-lambda/internal/ai"
	"github.com/studyforge/studyforge-lambda/internal/pdfclient"
	"gorm.io/gorm"
)

type FlashcardContainer struct {
	Handler *Handler
	Service FlashcardService
	Repo    FlashcardRepository
}

func NewFlashcardContainer(db *gorm.DB, provider ai.Provider, pdf pdfclient.Client) *FlashcardContainer {
	repo := NewRepository(db)
	service := NewService(provider, repo, pdf)
	handler := NewHandler(service)

	return &FlashcardContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
