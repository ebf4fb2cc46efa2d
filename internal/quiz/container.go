package quiz

import "gorm.io/gorm"

type QuizContainer struct {
	Handler *Handler
	Service QuizService
	Repo    QuizAttemptRepository
}

func NewQuizContainer(db *gorm.DB) *QuizContainer {
	store := NewAttemptStore()
	repo := NewRepository(db)
	service := NewService(store, repo)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
