package community

import (
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/user"
	"gorm.io/gorm"
)

type CommunityContainer struct {
	Handler *Handler
	Service CommunityService
	Repo    CommunityRepository
}

func NewCommunityContainer(db *gorm.DB, users user.UserRepository, noteSvc notes.NoteService) *CommunityContainer {
	repo := NewRepository(db)
	service := NewService(repo, users, noteSvc)
	handler := NewHandler(service)

	return &CommunityContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
