package quiz

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

var ErrUnauthorized = errors.New("unauthorized")

type QuizService interface {
	StartAttempt(ctx context.Context, def quizsession.Definition) (*AttemptStateDTO, error)
	GetAttempt(ctx context.Context, attemptID string) (*AttemptStateDTO, error)
	SelectAnswer(ctx context.Context, attemptID string, optionIndex int) (*AttemptStateDTO, error)
	Next(ctx context.Context, attemptID string) (*AttemptStateDTO, error)
	Previous(ctx context.Context, attemptID string) (*AttemptStateDTO, error)
	Retake(ctx context.Context, attemptID string) (*AttemptStateDTO, error)
	Result(ctx context.Context, attemptID string) (*AttemptResultDTO, error)
	History(ctx context.Context) ([]*QuizAttemptRecord, error)
}

type quizService struct {
	store *AttemptStore
	repo  QuizAttemptRepository
}

func NewService(store *AttemptStore, repo QuizAttemptRepository) QuizService {
	return &quizService{store: store, repo: repo}
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

func (s *quizService) StartAttempt(ctx context.Context, def quizsession.Definition) (*AttemptStateDTO, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	session, err := quizsession.New(def)
	if err != nil {
		log.WithError(err).Warn("Definição de quiz rejeitada")
		return nil, err
	}

	a := s.store.Put(userID, session)
	log.WithField("attempt_id", a.ID.String()).Info("Tentativa de quiz iniciada")
	return attemptState(a), nil
}

func (s *quizService) attempt(ctx context.Context, attemptID string) (*Attempt, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(attemptID)
	if err != nil {
		return nil, ErrAttemptNotFound
	}
	return s.store.Get(id, userID)
}

func (s *quizService) GetAttempt(ctx context.Context, attemptID string) (*AttemptStateDTO, error) {
	a, err := s.attempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return attemptState(a), nil
}

func (s *quizService) SelectAnswer(ctx context.Context, attemptID string, optionIndex int) (*AttemptStateDTO, error) {
	a, err := s.attempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	if err := a.Session.SelectAnswer(optionIndex); err != nil {
		return nil, err
	}
	return attemptState(a), nil
}

func (s *quizService) Next(ctx context.Context, attemptID string) (*AttemptStateDTO, error) {
	log := config.WithContext(ctx)

	a, err := s.attempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	if err := a.Session.Next(); err != nil {
		return nil, err
	}

	if a.Session.Completed() {
		if err := s.persistResult(ctx, a); err != nil {
			// O resultado continua disponível em memória mesmo se a
			// persistência do histórico falhar.
			log.WithError(err).Error("Falha ao persistir resultado da tentativa")
		}
	}
	return attemptState(a), nil
}

func (s *quizService) Previous(ctx context.Context, attemptID string) (*AttemptStateDTO, error) {
	a, err := s.attempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	a.Session.Previous()
	return attemptState(a), nil
}

func (s *quizService) Retake(ctx context.Context, attemptID string) (*AttemptStateDTO, error) {
	a, err := s.attempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	a.Session.Retake()
	return attemptState(a), nil
}

func (s *quizService) Result(ctx context.Context, attemptID string) (*AttemptResultDTO, error) {
	a, err := s.attempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	if !a.Session.Completed() {
		return nil, quizsession.ErrAnswerRequired
	}
	return attemptResult(a), nil
}

func (s *quizService) History(ctx context.Context) ([]*QuizAttemptRecord, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListByUser(userID.String())
	if err != nil {
		log.WithError(err).Error("Falha ao listar histórico de tentativas")
		return nil, err
	}
	return records, nil
}

func (s *quizService) persistResult(ctx context.Context, a *Attempt) error {
	res := a.Session.Result()
	def := a.Session.Definition()

	breakdown, err := json.Marshal(res)
	if err != nil {
		return err
	}

	// Um retake pode concluir o mesmo attempt mais de uma vez; cada
	// conclusão gera um registro próprio no histórico.
	rec := &QuizAttemptRecord{
		ID:             uuid.New(),
		UserID:         a.UserID,
		Title:          def.Title,
		Description:    def.Description,
		TotalQuestions: res.TotalCount,
		CorrectCount:   res.CorrectCount,
		Percentage:     res.Percentage,
		Breakdown:      breakdown,
	}

	if err := s.repo.Create(rec); err != nil {
		return err
	}

	config.WithContext(ctx).WithField("attempt_id", a.ID.String()).Info("Resultado de quiz salvo")
	return nil
}
