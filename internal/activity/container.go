package activity

import (
	"github.com/studyforge/studyforge-lambda/internal/flashcards"
	"github.com/studyforge/studyforge-lambda/internal/gform"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/quiz"
)

type ActivityContainer struct {
	Handler *Handler
	Service ActivityService
}

func NewActivityContainer(
	flashcardSvc flashcards.FlashcardService,
	noteSvc notes.NoteService,
	gformSvc gform.GFormService,
	quizSvc quiz.QuizService,
) *ActivityContainer {
	service := NewService(flashcardSvc, noteSvc, gformSvc, quizSvc)
	handler := NewHandler(service)

	return &ActivityContainer{
		Handler: handler,
		Service: service,
	}
}
