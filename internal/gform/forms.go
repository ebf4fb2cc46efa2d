package gform

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
	"github.com/studyforge/studyforge-lambda/internal/user"
	"golang.org/x/oauth2"
	gforms "google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
)

var (
	ErrUserNotFound     = errors.New("user not found for forms integration")
	ErrDecryptionFailed = errors.New("failed to decrypt user's google token")
	ErrMissingTokens    = errors.New("user has no google access token")
)

type CreatedForm struct {
	FormID       string
	ResponderURL string
}

type FormResponse struct {
	ResponseID  string    `json:"response_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	// Answers na ordem das questões do formulário; string vazia quando a
	// questão ficou sem resposta.
	Answers []string `json:"answers"`
}

// FormsAPI isola a integração com o Google Forms para que o serviço possa
// ser testado sem a API real.
type FormsAPI interface {
	CreateQuizForm(ctx context.Context, userID uuid.UUID, def quizsession.Definition) (*CreatedForm, error)
	ListResponses(ctx context.Context, userID uuid.UUID, formID string) ([]FormResponse, error)
}

type formsAPI struct {
	userRepo    user.UserRepository
	oauthConfig *oauth2.Config
}

func NewFormsAPI(userRepo user.UserRepository, oauthConfig *oauth2.Config) FormsAPI {
	return &formsAPI{
		userRepo:    userRepo,
		oauthConfig: oauthConfig,
	}
}

func (a *formsAPI) getFormsClient(ctx context.Context, userID uuid.UUID) (*gforms.Service, error) {
	log := config.WithContext(ctx)

	u, err := a.userRepo.GetByID(userID.String())
	if err != nil {
		log.WithError(err).Error("Falha ao buscar usuário para o cliente do Forms")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if u.EncryptedGoogleAccessToken == "" {
		return nil, ErrMissingTokens
	}

	accessToken, err := config.Decrypt(u.EncryptedGoogleAccessToken)
	if err != nil {
		log.WithError(err).Error("Falha ao descriptografar o access token")
		return nil, ErrDecryptionFailed
	}

	refreshToken := ""
	if u.EncryptedGoogleRefreshToken != "" {
		refreshToken, err = config.Decrypt(u.EncryptedGoogleRefreshToken)
		if err != nil {
			log.WithError(err).Error("Falha ao descriptografar o refresh token")
			return nil, ErrDecryptionFailed
		}
	}

	token := &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}

	tokenSource := a.oauthConfig.TokenSource(ctx, token)
	if _, err := tokenSource.Token(); err != nil {
		log.WithError(err).Error("Falha ao renovar o token do Google")
		return nil, err
	}

	client := oauth2.NewClient(ctx, tokenSource)
	srv, err := gforms.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.WithError(err).Error("Falha ao criar cliente do Forms")
		return nil, err
	}
	return srv, nil
}

func (a *formsAPI) CreateQuizForm(ctx context.Context, userID uuid.UUID, def quizsession.Definition) (*CreatedForm, error) {
	log := config.WithContext(ctx)

	srv, err := a.getFormsClient(ctx, userID)
	if err != nil {
		return nil, err
	}

	form, err := srv.Forms.Create(&gforms.Form{
		Info: &gforms.Info{
			Title:         def.Title,
			DocumentTitle: def.Title,
		},
	}).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Falha ao criar o formulário")
		return nil, err
	}

	requests := []*gforms.Request{
		{
			UpdateSettings: &gforms.UpdateSettingsRequest{
				Settings: &gforms.FormSettings{
					QuizSettings: &gforms.QuizSettings{IsQuiz: true},
				},
				UpdateMask: "quizSettings.isQuiz",
			},
		},
	}

	for i, q := range def.Questions {
		options := make([]*gforms.Option, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, &gforms.Option{Value: o})
		}

		requests = append(requests, &gforms.Request{
			CreateItem: &gforms.CreateItemRequest{
				Item: &gforms.Item{
					Title: q.Question,
					QuestionItem: &gforms.QuestionItem{
						Question: &gforms.Question{
							Required: true,
							Grading: &gforms.Grading{
								PointValue: 1,
								CorrectAnswers: &gforms.CorrectAnswers{
									Answers: []*gforms.CorrectAnswer{{Value: q.CorrectOption}},
								},
							},
							ChoiceQuestion: &gforms.ChoiceQuestion{
								Type:    "RADIO",
								Options: options,
							},
						},
					},
				},
				Location: &gforms.Location{
					Index:           int64(i),
					ForceSendFields: []string{"Index"},
				},
			},
		})
	}

	if _, err := srv.Forms.BatchUpdate(form.FormId, &gforms.BatchUpdateFormRequest{
		Requests: requests,
	}).Context(ctx).Do(); err != nil {
		log.WithError(err).Error("Falha ao montar as questões do formulário")
		return nil, err
	}

	log.WithField("form_id", form.FormId).Info("Formulário de quiz criado")
	return &CreatedForm{FormID: form.FormId, ResponderURL: form.ResponderUri}, nil
}

func (a *formsAPI) ListResponses(ctx context.Context, userID uuid.UUID, formID string) ([]FormResponse, error) {
	log := config.WithContext(ctx)

	srv, err := a.getFormsClient(ctx, userID)
	if err != nil {
		return nil, err
	}

	form, err := srv.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Falha ao buscar o formulário")
		return nil, err
	}

	// A ordem dos itens define a ordem das respostas devolvidas.
	questionIDs := make([]string, 0, len(form.Items))
	for _, item := range form.Items {
		if item.QuestionItem == nil || item.QuestionItem.Question == nil {
			continue
		}
		questionIDs = append(questionIDs, item.QuestionItem.Question.QuestionId)
	}

	list, err := srv.Forms.Responses.List(formID).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Falha ao listar respostas do formulário")
		return nil, err
	}

	responses := make([]FormResponse, 0, len(list.Responses))
	for _, resp := range list.Responses {
		answers := make([]string, len(questionIDs))
		for i, qid := range questionIDs {
			answer, ok := resp.Answers[qid]
			if !ok || answer.TextAnswers == nil || len(answer.TextAnswers.Answers) == 0 {
				continue
			}
			answers[i] = answer.TextAnswers.Answers[0].Value
		}

		submittedAt, _ := time.Parse(time.RFC3339, resp.LastSubmittedTime)
		responses = append(responses, FormResponse{
			ResponseID:  resp.ResponseId,
			SubmittedAt: submittedAt,
			Answers:     answers,
		})
	}
	return responses, nil
}
