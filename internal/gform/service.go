package gform

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrFormNotFound     = errors.New("form not found")
	ErrResponseNotFound = errors.New("form response not found")
	ErrURLRequired      = errors.New("title and url are required")
)

type GFormService interface {
	Create(ctx context.Context, def quizsession.Definition) (*GFormRecord, error)
	Save(ctx context.Context, req SaveRequest) (*GFormRecord, error)
	List(ctx context.Context) ([]*GFormRecord, error)
	Responses(ctx context.Context, formID string) ([]FormResponse, error)
	Review(ctx context.Context, req ReviewRequest) (*ReviewDTO, error)
	SavePdfURL(ctx context.Context, req SavePdfRequest) (*QuizPdf, error)
	ListPdfURLs(ctx context.Context) ([]*QuizPdf, error)
}

type gformService struct {
	api  FormsAPI
	repo GFormRepository
}

func NewService(api FormsAPI, repo GFormRepository) GFormService {
	return &gformService{api: api, repo: repo}
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

func (s *gformService) Create(ctx context.Context, def quizsession.Definition) (*GFormRecord, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := quizsession.ValidateDefinition(def); err != nil {
		return nil, err
	}

	created, err := s.api.CreateQuizForm(ctx, userID, def)
	if err != nil {
		return nil, err
	}

	rec, err := s.persistRecord(userID, created.FormID, def.Title, created.ResponderURL, def)
	if err != nil {
		log.WithError(err).Error("Falha ao persistir registro do formulário")
		return nil, err
	}

	log.WithField("form_id", rec.FormID).Info("Quiz exportado para o Google Forms")
	return rec, nil
}

func (s *gformService) Save(ctx context.Context, req SaveRequest) (*GFormRecord, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.FormID == "" {
		return nil, ErrFormNotFound
	}
	if err := quizsession.ValidateDefinition(req.Definition); err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = req.Definition.Title
	}
	return s.persistRecord(userID, req.FormID, title, req.ResponderURL, req.Definition)
}

func (s *gformService) persistRecord(userID uuid.UUID, formID, title, responderURL string, def quizsession.Definition) (*GFormRecord, error) {
	definition, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}

	rec := &GFormRecord{
		ID:           uuid.New(),
		UserID:       userID,
		FormID:       formID,
		Title:        title,
		ResponderURL: responderURL,
		Definition:   definition,
	}
	if err := s.repo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *gformService) List(ctx context.Context) ([]*GFormRecord, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(userID.String())
}

func (s *gformService) record(ctx context.Context, formID string) (uuid.UUID, *GFormRecord, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return uuid.Nil, nil, err
	}

	rec, err := s.repo.GetByFormID(formID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if rec == nil || rec.UserID != userID {
		return uuid.Nil, nil, ErrFormNotFound
	}
	return userID, rec, nil
}

func (s *gformService) Responses(ctx context.Context, formID string) ([]FormResponse, error) {
	userID, rec, err := s.record(ctx, formID)
	if err != nil {
		return nil, err
	}
	return s.api.ListResponses(ctx, userID, rec.FormID)
}

func (s *gformService) Review(ctx context.Context, req ReviewRequest) (*ReviewDTO, error) {
	log := config.WithContext(ctx)

	userID, rec, err := s.record(ctx, req.FormID)
	if err != nil {
		return nil, err
	}

	var def quizsession.Definition
	if err := json.Unmarshal(rec.Definition, &def); err != nil {
		log.WithError(err).Error("Definição armazenada do formulário é inválida")
		return nil, err
	}

	responses, err := s.api.ListResponses(ctx, userID, rec.FormID)
	if err != nil {
		return nil, err
	}

	for _, resp := range responses {
		if resp.ResponseID != req.ResponseID {
			continue
		}
		result, err := quizsession.ScoreAnswers(def, resp.Answers)
		if err != nil {
			return nil, err
		}
		return &ReviewDTO{
			FormID:     rec.FormID,
			ResponseID: resp.ResponseID,
			Result:     result,
		}, nil
	}
	return nil, ErrResponseNotFound
}

func (s *gformService) SavePdfURL(ctx context.Context, req SavePdfRequest) (*QuizPdf, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Title == "" || req.URL == "" {
		return nil, ErrURLRequired
	}

	pdf := &QuizPdf{
		ID:     uuid.New(),
		UserID: userID,
		Title:  req.Title,
		URL:    req.URL,
	}
	if err := s.repo.CreatePdf(pdf); err != nil {
		return nil, err
	}
	return pdf, nil
}

func (s *gformService) ListPdfURLs(ctx context.Context) ([]*QuizPdf, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPdfsByUser(userID.String())
}
