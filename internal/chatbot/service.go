package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/ai"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/config"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrMessageRequired = errors.New("message is required")
	ErrTextRequired    = errors.New("document text is required")
)

const systemPrompt = `
You are a study assistant inside a learning application. Answer questions
about the student's study topics clearly and concisely. When a document is
present in the conversation context, ground your answers in it. If a question
falls outside the study material, say so instead of guessing.
`

// historyWindow limita quantas mensagens recentes entram no contexto do
// modelo a cada pergunta.
const historyWindow = 20

type ChatService interface {
	SendMessage(ctx context.Context, message string) (*ChatMessage, error)
	History(ctx context.Context) ([]*ChatMessage, error)
	ProcessDocument(ctx context.Context, name, text string) error
}

type chatService struct {
	provider ai.Provider
	repo     ChatRepository
}

func NewService(provider ai.Provider, repo ChatRepository) ChatService {
	return &chatService{provider: provider, repo: repo}
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

func (s *chatService) SendMessage(ctx context.Context, message string) (*ChatMessage, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}

	recent, err := s.repo.ListByUser(userID.String(), historyWindow)
	if err != nil {
		log.WithError(err).Error("Falha ao carregar histórico do chat")
		return nil, err
	}

	answer, err := s.provider.GenerateText(ctx, systemPrompt, buildConversation(recent, message))
	if err != nil {
		log.WithError(err).Error("Falha ao gerar resposta do assistente")
		return nil, err
	}

	userMsg := &ChatMessage{ID: uuid.New(), UserID: userID, Role: RoleUser, Content: message}
	if err := s.repo.Create(userMsg); err != nil {
		return nil, err
	}

	reply := &ChatMessage{ID: uuid.New(), UserID: userID, Role: RoleAssistant, Content: answer}
	if err := s.repo.Create(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *chatService) History(ctx context.Context) ([]*ChatMessage, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := s.repo.ListByUser(userID.String(), 0)
	if err != nil {
		return nil, err
	}

	// Mensagens de documento são contexto interno, não conversa.
	visible := make([]*ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleDocument {
			continue
		}
		visible = append(visible, m)
	}
	return visible, nil
}

func (s *chatService) ProcessDocument(ctx context.Context, name, text string) error {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}

	content := text
	if name != "" {
		content = fmt.Sprintf("Document %q:\n%s", name, text)
	}

	msg := &ChatMessage{ID: uuid.New(), UserID: userID, Role: RoleDocument, Content: content}
	if err := s.repo.Create(msg); err != nil {
		log.WithError(err).Error("Falha ao salvar documento do chat")
		return err
	}

	log.WithField("document", name).Info("Documento adicionado ao contexto do chat")
	return nil
}

func buildConversation(recent []*ChatMessage, message string) string {
	var b strings.Builder
	for _, m := range recent {
		switch m.Role {
		case RoleDocument:
			b.WriteString("Context document:\n")
			b.WriteString(m.Content)
		case RoleAssistant:
			b.WriteString("Assistant: ")
			b.WriteString(m.Content)
		default:
			b.WriteString("Student: ")
			b.WriteString(m.Content)
		}
		b.WriteString("\n\n")
	}
	b.WriteString("Student: ")
	b.WriteString(message)
	return b.String()
}
