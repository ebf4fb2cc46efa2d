package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/auth"
)

type fakeProvider struct {
	response string
	err      error
	lastUser string
}

func (f *fakeProvider) GenerateText(ctx context.Context, system, user string) (string, error) {
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) GenerateJSON(ctx context.Context, system, user string, out interface{}) error {
	return errors.New("não usado no chatbot")
}

type fakeChatRepo struct {
	msgs []*ChatMessage
}

func (f *fakeChatRepo) Create(msg *ChatMessage) error {
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChatRepo) ListByUser(userID string, limit int) ([]*ChatMessage, error) {
	var out []*ChatMessage
	for _, m := range f.msgs {
		if m.UserID.String() == userID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func authedContext(userID uuid.UUID) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UserID: userID.String(),
		Role:   "student",
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("PersistsBothSides", func(t *testing.T) {
		provider := &fakeProvider{response: "Paris é a capital da França."}
		repo := &fakeChatRepo{}
		svc := NewService(provider, repo)

		ctx := authedContext(uuid.New())
		reply, err := svc.SendMessage(ctx, "Qual a capital da França?")
		if err != nil {
			t.Fatalf("SendMessage falhou: %v", err)
		}
		if reply.Role != RoleAssistant || reply.Content != "Paris é a capital da França." {
			t.Errorf("Resposta inesperada: %+v", reply)
		}
		if len(repo.msgs) != 2 || repo.msgs[0].Role != RoleUser {
			t.Errorf("Pergunta e resposta deveriam ser persistidas: %+v", repo.msgs)
		}
	})

	t.Run("HistoryAndDocumentInContext", func(t *testing.T) {
		provider := &fakeProvider{response: "ok"}
		repo := &fakeChatRepo{}
		svc := NewService(provider, repo)

		ctx := authedContext(uuid.New())
		if err := svc.ProcessDocument(ctx, "apostila.pdf", "Fotossíntese converte luz em energia."); err != nil {
			t.Fatalf("ProcessDocument falhou: %v", err)
		}
		if _, err := svc.SendMessage(ctx, "Resuma o documento."); err != nil {
			t.Fatalf("SendMessage falhou: %v", err)
		}

		if !strings.Contains(provider.lastUser, "Fotossíntese") {
			t.Errorf("Documento deveria entrar no contexto do modelo: %q", provider.lastUser)
		}
		if !strings.Contains(provider.lastUser, "Student: Resuma o documento.") {
			t.Errorf("Pergunta atual deveria fechar o contexto: %q", provider.lastUser)
		}
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		svc := NewService(&fakeProvider{}, &fakeChatRepo{})

		if _, err := svc.SendMessage(authedContext(uuid.New()), "   "); !errors.Is(err, ErrMessageRequired) {
			t.Errorf("Esperado ErrMessageRequired, recebido %v", err)
		}
	})

	t.Run("NoClaims", func(t *testing.T) {
		svc := NewService(&fakeProvider{}, &fakeChatRepo{})

		if _, err := svc.SendMessage(context.Background(), "oi"); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Esperado ErrUnauthorized, recebido %v", err)
		}
	})
}

func TestHistoryHidesDocuments(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	repo := &fakeChatRepo{}
	svc := NewService(provider, repo)

	ctx := authedContext(uuid.New())
	if err := svc.ProcessDocument(ctx, "doc.pdf", "conteúdo"); err != nil {
		t.Fatalf("ProcessDocument falhou: %v", err)
	}
	if _, err := svc.SendMessage(ctx, "pergunta"); err != nil {
		t.Fatalf("SendMessage falhou: %v", err)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History falhou: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Histórico deveria ter pergunta e resposta, sem o documento: %+v", history)
	}
	for _, m := range history {
		if m.Role == RoleDocument {
			t.Error("Documento não deveria aparecer no histórico.")
		}
	}
}
