package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/ai"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/codeexec"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/pdfclient"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrTopicRequired     = errors.New("topic is required")
	ErrSetNotFound       = errors.New("note set not found")
	ErrNoSections        = errors.New("a note set needs at least one section")
	ErrMalformedSections = errors.New("model returned malformed note sections")
)

type NoteService interface {
	Generate(ctx context.Context, req GenerateRequest) ([]Section, error)
	Save(ctx context.Context, req SaveRequest) (*NoteSet, error)
	List(ctx context.Context) ([]SetSummaryDTO, error)
	Get(ctx context.Context, id string) (*NoteSet, error)
	RenderPdf(ctx context.Context, id string) (string, error)
	RunCode(ctx context.Context, req codeexec.ExecuteRequest) (*codeexec.ExecuteResult, error)
}

type noteService struct {
	provider ai.Provider
	repo     NoteRepository
	pdf      pdfclient.Client
	executor codeexec.Client
}

func NewService(provider ai.Provider, repo NoteRepository, pdf pdfclient.Client, executor codeexec.Client) NoteService {
	return &noteService{provider: provider, repo: repo, pdf: pdf, executor: executor}
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

func (s *noteService) Generate(ctx context.Context, req GenerateRequest) ([]Section, error) {
	log := config.WithContext(ctx)

	if req.Topic == "" {
		return nil, ErrTopicRequired
	}

	var sections []Section
	if err := s.provider.GenerateJSON(ctx, systemPrompt, buildPrompt(req), &sections); err != nil {
		log.WithError(err).Error("Falha ao gerar notas")
		return nil, err
	}
	if len(sections) == 0 {
		return nil, ErrMalformedSections
	}
	for _, sec := range sections {
		if sec.Title == "" || sec.Content == "" {
			return nil, ErrMalformedSections
		}
	}

	log.WithField("num_sections", len(sections)).Info("Notas geradas")
	return sections, nil
}

func (s *noteService) Save(ctx context.Context, req SaveRequest) (*NoteSet, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Topic == "" {
		return nil, ErrTopicRequired
	}
	if len(req.Sections) == 0 {
		return nil, ErrNoSections
	}

	sections, err := json.Marshal(req.Sections)
	if err != nil {
		return nil, err
	}

	set := &NoteSet{
		ID:       uuid.New(),
		UserID:   userID,
		Topic:    req.Topic,
		Sections: sections,
	}
	if err := s.repo.Create(set); err != nil {
		log.WithError(err).Error("Falha ao salvar conjunto de notas")
		return nil, err
	}

	log.WithField("set_id", set.ID.String()).Info("Conjunto de notas salvo")
	return set, nil
}

func (s *noteService) List(ctx context.Context) ([]SetSummaryDTO, error) {
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
		var sections []Section
		_ = json.Unmarshal(set.Sections, &sections)

		summaries = append(summaries, SetSummaryDTO{
			ID:          set.ID.String(),
			Topic:       set.Topic,
			NumSections: len(sections),
			PdfURL:      set.PdfURL,
			CreatedAt:   set.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return summaries, nil
}

func (s *noteService) Get(ctx context.Context, id string) (*NoteSet, error) {
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

func (s *noteService) RenderPdf(ctx context.Context, id string) (string, error) {
	log := config.WithContext(ctx)

	set, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	var sections []Section
	if err := json.Unmarshal(set.Sections, &sections); err != nil {
		return "", err
	}

	blocks := make([]pdfclient.Section, 0, len(sections))
	for _, sec := range sections {
		blocks = append(blocks, pdfclient.Section{
			Heading: sec.Title,
			Body:    sec.Content,
			Code:    sec.Code,
		})
	}

	rendered, err := s.pdf.Render(ctx, pdfclient.RenderRequest{
		Title:    fmt.Sprintf("Notes: %s", set.Topic),
		Sections: blocks,
	})
	if err != nil {
		log.WithError(err).Error("Falha ao renderizar PDF de notas")
		return "", err
	}

	if err := s.repo.UpdatePdfURL(set.ID.String(), rendered.URL); err != nil {
		log.WithError(err).Error("Falha ao salvar URL do PDF de notas")
		return "", err
	}
	return rendered.URL, nil
}

func (s *noteService) RunCode(ctx context.Context, req codeexec.ExecuteRequest) (*codeexec.ExecuteResult, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}
	return s.executor.Execute(ctx, req)
}
