package activity

import (
	"context"

	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/flashcards"
	"github.com/studyforge/studyforge-lambda/internal/gform"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/quiz"
	util "github.com/studyforge/studyforge-lambda/internal/utils"
)

// recentAttemptsLimit limita quantas tentativas recentes entram no painel.
const recentAttemptsLimit = 10

type ActivityService interface {
	Dashboard(ctx context.Context) (*DashboardResponse, error)
}

type activityService struct {
	flashcardSvc flashcards.FlashcardService
	noteSvc      notes.NoteService
	gformSvc     gform.GFormService
	quizSvc      quiz.QuizService
}

func NewService(
	flashcardSvc flashcards.FlashcardService,
	noteSvc notes.NoteService,
	gformSvc gform.GFormService,
	quizSvc quiz.QuizService,
) ActivityService {
	return &activityService{
		flashcardSvc: flashcardSvc,
		noteSvc:      noteSvc,
		gformSvc:     gformSvc,
		quizSvc:      quizSvc,
	}
}

func (s *activityService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	log := config.WithContext(ctx)

	decks, err := s.flashcardSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	noteSets, err := s.noteSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	pdfs, err := s.gformSvc.ListPdfURLs(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.quizSvc.History(ctx)
	if err != nil {
		return nil, err
	}

	recent := make([]AttemptSummary, 0, recentAttemptsLimit)
	for _, rec := range history {
		if len(recent) == recentAttemptsLimit {
			break
		}
		recent = append(recent, AttemptSummary{
			Title:       rec.Title,
			Percentage:  rec.Percentage,
			Correct:     rec.CorrectCount,
			Total:       rec.TotalQuestions,
			CompletedAt: util.LocalDateTime{Time: rec.CompletedAt},
		})
	}

	log.WithField("attempts", len(history)).Info("Painel de atividade montado")
	return &DashboardResponse{
		Stats:          quizStats(history),
		Flashcards:     decks,
		Notes:          noteSets,
		QuizPdfs:       pdfs,
		RecentAttempts: recent,
	}, nil
}

func quizStats(history []*quiz.QuizAttemptRecord) QuizStats {
	stats := QuizStats{TotalAttempts: len(history)}
	if len(history) == 0 {
		return stats
	}

	sum := 0
	best, worst := history[0], history[0]
	for _, rec := range history {
		sum += rec.Percentage
		if rec.Percentage > best.Percentage {
			best = rec
		}
		if rec.Percentage < worst.Percentage {
			worst = rec
		}
	}

	stats.AveragePercentage = sum / len(history)
	stats.BestTitle = best.Title
	stats.BestPercentage = best.Percentage
	stats.WorstTitle = worst.Title
	stats.WorstPercentage = worst.Percentage
	return stats
}
