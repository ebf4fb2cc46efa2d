package notes

import (
	"github.com/studyforge/studyforge-lambda/internal/ai"
	"github.com/studyforge/studyforge-lambda/internal/codeexec"
	"github.com/studyforge/studyforge-lambda/internal/pdfclient"
	"gorm.io/gorm"
)

type NoteContainer struct {
	Handler *Handler
	Service NoteService
	Repo    NoteRepository
}

func NewNoteContainer(db *gorm.DB, provider ai.Provider, pdf pdfclient.Client, executor codeexec.Client) *NoteContainer {
	repo := NewRepository(db)
	service := NewService(provider, repo, pdf, executor)
	handler := NewHandler(service)

	return &NoteContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
