package container

import (
	"context"
	"log"
	"os"

	"github.com/studyforge/studyforge-lambda/internal/activity"
	"github.com/studyforge/studyforge-lambda/internal/ai"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/chatbot"
	"github.com/studyforge/studyforge-lambda/internal/codeexec"
	"github.com/studyforge/studyforge-lambda/internal/community"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/flashcards"
	"github.com/studyforge/studyforge-lambda/internal/gform"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/pdfclient"
	"github.com/studyforge/studyforge-lambda/internal/quiz"
	"github.com/studyforge/studyforge-lambda/internal/quizgen"
	"github.com/studyforge/studyforge-lambda/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	QuizGenContainer   *quizgen.QuizGenContainer
	QuizContainer      *quiz.QuizContainer
	FlashcardContainer *flashcards.FlashcardContainer
	NoteContainer      *notes.NoteContainer
	ChatContainer      *chatbot.ChatContainer
	CommunityContainer *community.CommunityContainer
	GFormContainer     *gform.GFormContainer
	ActivityContainer  *activity.ActivityContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	provider, err := ai.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to create AI provider: %v", err)
	}

	pdf := pdfclient.NewClient()
	executor := codeexec.NewClient()

	userContainer := user.NewUserContainer(config.DB)
	quizGenContainer := quizgen.NewQuizGenContainer(provider)
	quizContainer := quiz.NewQuizContainer(config.DB)
	flashcardContainer := flashcards.NewFlashcardContainer(config.DB, provider, pdf)
	noteContainer := notes.NewNoteContainer(config.DB, provider, pdf, executor)
	chatContainer := chatbot.NewChatContainer(config.DB, provider)
	communityContainer := community.NewCommunityContainer(config.DB, userContainer.Repo, noteContainer.Service)
	gformContainer := gform.NewGFormContainer(config.DB, userContainer.Repo)
	activityContainer := activity.NewActivityContainer(
		flashcardContainer.Service,
		noteContainer.Service,
		gformContainer.Service,
		quizContainer.Service,
	)

	return &Container{
		UserContainer:      userContainer,
		QuizGenContainer:   quizGenContainer,
		QuizContainer:      quizContainer,
		FlashcardContainer: flashcardContainer,
		NoteContainer:      noteContainer,
		ChatContainer:      chatContainer,
		CommunityContainer: communityContainer,
		GFormContainer:     gformContainer,
		ActivityContainer:  activityContainer,
	}
}
