package flashcards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/ai"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/pdfclient"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTopicRequired  = errors.New("subject and topic are required")
	ErrSetNotFound    = errors.New("flashcard set not found")
	ErrNoCards        = errors.New("a flashcard set needs at least one card")
	ErrMalformedCards = errors.New("model returned malformed flashcards")
)

type FlashcardService interface {
	Generate(ctx context.Context, req GenerateRequest) ([]Card, error)
	Save(ctx context.Context, req SaveRequest) (*FlashcardSet, error)
	List(ctx context.Context) ([]SetSummaryDTO, error)
	Get(ctx context.Context, id string) (*FlashcardSet, error)
	RenderPdf(ctx context.Context, id string) (string, error)
}

type flashcardService struct {
	provider ai.Provider
	repo     FlashcardRepository
	pdf      pdfclient.Client
}

func NewService(provider ai.Provider, repo FlashcardRepository, pdf pdfclient.Client) FlashcardService {
	return &flashcardService{provider: provider, repo: repo, pdf: pdf}
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

func (s *flashcardService) Generate(ctx context.Context, req GenerateRequest) ([]Card, error) {
	log := config.WithContext(ctx)

	if req.Subject == "" || req.Topic == "" {
		return nil, ErrTopicRequired
	}

	var cards []Card
	if err := s.provider.GenerateJSON(ctx, systemPrompt, buildPrompt(req), &cards); err != nil {
		log.WithError(err).Error("Falha ao gerar flashcards")
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrMalformedCards
	}
	for _, c := range cards {
		if c.Question == "" || c.Answer == "" {
			return nil, ErrMalformedCards
		}
	}

	log.WithField("num_cards", len(cards)).Info("Flashcards gerados")
	return cards, nil
}

func (s *flashcardService) Save(ctx context.Context, req SaveRequest) (*FlashcardSet, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Subject == "" || req.Topic == "" {
		return nil, ErrTopicRequired
	}
	if len(req.Cards) == 0 {
		return nil, ErrNoCards
	}

	cards, err := json.Marshal(req.Cards)
	if err != nil {
		return nil, err
	}

	set := &FlashcardSet{
		ID:      uuid.New(),
		UserID:  userID,
		Subject: req.Subject,
		Topic:   req.Topic,
		Cards:   cards,
	}
	if err := s.repo.Create(set); err != nil {
		log.WithError(err).Error("Falha ao salvar conjunto de flashcards")
		return nil, err
	}

	log.WithField("set_id", set.ID.String()).Info("Conjunto de flashcards salvo")
	return set, nil
}

func (s *flashcardService) List(ctx context.Context) ([]SetSummaryDTO, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sets, err := s.repo.ListByUser(userID.String())
	if err != nil {
		return nil, err
	}

	summaries := make([]SetSummaryDTO, 0, len(sets))
	for _, set := range sets {
		var cards []Card
		_ = json.Unmarshal(set.Cards, &cards)

		summaries = append(summaries, SetSummaryDTO{
			ID:        set.ID.String(),
			Subject:   set.Subject,
			Topic:     set.Topic,
			NumCards:  len(cards),
			PdfURL:    set.PdfURL,
			CreatedAt: set.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return summaries, nil
}

func (s *flashcardService) Get(ctx context.Context, id string) (*FlashcardSet, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	set, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if set == nil || set.UserID != userID {
		return nil, ErrSetNotFound
	}
	return set, nil
}

func (s *flashcardService) RenderPdf(ctx context.Context, id string) (string, error) {
	log := config.WithContext(ctx)

	set, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	var cards []Card
	if err := json.Unmarshal(set.Cards, &cards); err != nil {
		return "", err
	}

	sections := make([]pdfclient.Section, 0, len(cards))
	for i, c := range cards {
		sections = append(sections, pdfclient.Section{
			Heading: fmt.Sprintf("Card %d: %s", i+1, c.Question),
			Body:    c.Answer,
		})
	}

	rendered, err := s.pdf.Render(ctx, pdfclient.RenderRequest{
		Title:    fmt.Sprintf("Flashcards: %s / %s", set.Subject, set.Topic),
		Sections: sections,
	})
	if err != nil {
		log.WithError(err).Error("Falha ao renderizar PDF de flashcards")
		return "", err
	}

	if err := s.repo.UpdatePdfURL(set.ID.String(), rendered.URL); err != nil {
		log.WithError(err).Error("Falha ao salvar URL do PDF de flashcards")
		return "", err
	}
	return rendered.URL, nil
}
