package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/studyforge/studyforge-lambda/internal/config"
	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("empty response from model")

const defaultModel = "gemini-2.0-flash"

// Provider abstrai o modelo generativo usado pelos módulos de quiz,
// flashcards, notas e chatbot.
type Provider interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
	GenerateJSON(ctx context.Context, system, user string, out interface{}) error
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) GenerateText(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar conteúdo do Gemini")
		return "", fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

func (p *geminiProvider) GenerateJSON(ctx context.Context, system, user string, out interface{}) error {
	log := config.WithContext(ctx)

	raw, err := p.GenerateText(ctx, system, user)
	if err != nil {
		return err
	}

	clean := CleanModelJSON(raw)
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		log.WithError(err).Errorf("Falha ao decodificar JSON do modelo. Conteúdo limpo:\n%s", clean)
		return fmt.Errorf("falha ao decodificar JSON: %w", err)
	}
	return nil
}

// CleanModelJSON remove cercas de markdown que o modelo costuma incluir em
// volta do JSON.
func CleanModelJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.Trim(clean, "` \n")
}
