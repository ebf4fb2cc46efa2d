package gform

import (
	"os"

	"github.com/studyforge/studyforge-lambda/internal/user"
	"golang.org/x/oauth2"
	gforms "google.golang.org/api/forms/v1"
	"gorm.io/gorm"
)

type GFormContainer struct {
	Handler *Handler
	Service GFormService
	Repo    GFormRepository
}

func NewGFormContainer(db *gorm.DB, userRepo user.UserRepository) *GFormContainer {
	oauthConfig := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{gforms.FormsBodyScope, gforms.FormsResponsesReadonlyScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}

	api := NewFormsAPI(userRepo, oauthConfig)
	repo := NewRepository(db)
	service := NewService(api, repo)
	handler := NewHandler(service)

	return &GFormContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
