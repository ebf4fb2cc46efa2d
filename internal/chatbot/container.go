package chatbot

import (
	"github.com/studyforge/studyforge-lambda/internal/ai"
	"gorm.io/gorm"
)

type ChatContainer struct {
	Handler *Handler
	Service ChatService
	Repo    ChatRepository
}

func NewChatContainer(db *gorm.DB, provider ai.Provider) *ChatContainer {
	repo := NewRepository(db)
	service := NewService(provider, repo)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
