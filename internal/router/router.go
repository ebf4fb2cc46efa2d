package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/studyforge/studyforge-lambda/internal/activity"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/chatbot"
	"github.com/studyforge/studyforge-lambda/internal/community"
	"github.com/studyforge/studyforge-lambda/internal/flashcards"
	"github.com/studyforge/studyforge-lambda/internal/gform"
	"github.com/studyforge/studyforge-lambda/internal/middlewares"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/quiz"
	"github.com/studyforge/studyforge-lambda/internal/quizgen"
	"github.com/studyforge/studyforge-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	QuizGenHandler   *quizgen.Handler
	QuizHandler      *quiz.Handler
	FlashcardHandler *flashcards.Handler
	NoteHandler      *notes.Handler
	ChatHandler      *chatbot.Handler
	CommunityHandler *community.Handler
	GFormHandler     *gform.Handler
	ActivityHandler  *activity.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/quiz", quizgen.Routes(cfg.QuizGenHandler))
		r.Mount("/quiz-session", quiz.Routes(cfg.QuizHandler))
		r.Mount("/flashcards", flashcards.Routes(cfg.FlashcardHandler))
		r.Mount("/notes", notes.Routes(cfg.NoteHandler))
		r.Mount("/chatbot", chatbot.Routes(cfg.ChatHandler))
		r.Mount("/community", community.Routes(cfg.CommunityHandler))
		r.Mount("/quiz-gform", gform.Routes(cfg.GFormHandler))
		r.Mount("/activity", activity.Routes(cfg.ActivityHandler))
	})
	return r
}
