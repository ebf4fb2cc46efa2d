package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studyforge/studyforge-lambda/internal/ai"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

var (
	ErrTopicRequired      = errors.New("topic is required")
	ErrInvalidDifficulty  = errors.New("invalid difficulty")
	ErrNoSourceMaterial   = errors.New("no source material provided")
	ErrMalformedQuestions = errors.New("model returned malformed questions")
)

type Service interface {
	GenerateFromTopic(ctx context.Context, req GenerateRequest) (*quizsession.Definition, error)
	GenerateFromFlashcards(ctx context.Context, req FromFlashcardsRequest) (*quizsession.Definition, error)
	GenerateFromNotes(ctx context.Context, req FromNotesRequest) (*quizsession.Definition, error)
}

type service struct {
	provider ai.Provider
}

func NewService(provider ai.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateFromTopic(ctx context.Context, req GenerateRequest) (*quizsession.Definition, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, ErrTopicRequired
	}
	if req.Difficulty == "" {
		req.Difficulty = DifficultyMedium
	}
	if !req.Difficulty.IsValid() {
		return nil, ErrInvalidDifficulty
	}

	title := fmt.Sprintf("Quiz: %s", req.Topic)
	description := fmt.Sprintf("Test your knowledge of %s with this %s difficulty quiz.", req.Topic, req.Difficulty)

	return s.generate(ctx, title, description, BuildTopicPrompt(req))
}

func (s *service) GenerateFromFlashcards(ctx context.Context, req FromFlashcardsRequest) (*quizsession.Definition, error) {
	if len(req.Flashcards) == 0 {
		return nil, ErrNoSourceMaterial
	}

	topic := req.Topic
	if topic == "" {
		topic = "your flashcards"
	}
	title := fmt.Sprintf("Quiz: %s", topic)
	description := fmt.Sprintf("Quiz generated from your %s flashcards.", topic)

	return s.generate(ctx, title, description, BuildFlashcardsPrompt(req))
}

func (s *service) GenerateFromNotes(ctx context.Context, req FromNotesRequest) (*quizsession.Definition, error) {
	if len(req.Notes) == 0 {
		return nil, ErrNoSourceMaterial
	}

	topic := req.Topic
	if topic == "" {
		topic = "your notes"
	}
	title := fmt.Sprintf("Quiz: %s", topic)
	description := fmt.Sprintf("Quiz generated from your notes on %s.", topic)

	return s.generate(ctx, title, description, BuildNotesPrompt(req))
}

func (s *service) generate(ctx context.Context, title, description, userPrompt string) (*quizsession.Definition, error) {
	log := config.WithContext(ctx)

	var questions []quizsession.Question
	if err := s.provider.GenerateJSON(ctx, systemPrompt, userPrompt, &questions); err != nil {
		log.WithError(err).Error("Falha ao gerar perguntas do quiz")
		return nil, err
	}

	def := quizsession.Definition{
		Title:       title,
		Description: description,
		Questions:   questions,
	}

	if err := quizsession.ValidateDefinition(def); err != nil {
		log.WithError(err).Error("Modelo retornou perguntas malformadas")
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuestions, err)
	}

	log.Infof("Geradas %d perguntas com sucesso", len(questions))
	return &def, nil
}
