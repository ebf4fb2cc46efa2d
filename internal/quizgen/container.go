package quizgen

import "github.com/studyforge/studyforge-lambda/internal/ai"

type QuizGenContainer struct {
	Handler *Handler
	Service Service
}

func NewQuizGenContainer(provider ai.Provider) *QuizGenContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &QuizGenContainer{
		Handler: handler,
		Service: service,
	}
}
