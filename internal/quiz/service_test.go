package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/quizsession"
)

type fakeAttemptRepo struct {
	created []*QuizAttemptRecord
	err     error
}

func (f *fakeAttemptRepo) Create(rec *QuizAttemptRecord) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeAttemptRepo) ListByUser(userID string) ([]*QuizAttemptRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*QuizAttemptRecord
	for _, rec := range f.created {
		if rec.UserID.String() == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func authedContext(userID uuid.UUID) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UserID: userID.String(),
		Role:   "student",
	})
}

func twoQuestionDefinition() quizsession.Definition {
	return quizsession.Definition{
		Title:       "Quiz: Geografia",
		Description: "Teste de conhecimentos",
		Questions: []quizsession.Question{
			{Question: "Capital da França?", Options: []string{"Paris", "Lyon"}, CorrectOption: "Paris"},
			{Question: "Capital da Itália?", Options: []string{"Milão", "Roma"}, CorrectOption: "Roma"},
		},
	}
}

func TestQuizServiceFlow(t *testing.T) {
	repo := &fakeAttemptRepo{}
	svc := NewService(NewAttemptStore(), repo)

	userID := uuid.New()
	ctx := authedContext(userID)

	state, err := svc.StartAttempt(ctx, twoQuestionDefinition())
	if err != nil {
		t.Fatalf("StartAttempt falhou: %v", err)
	}
	if state.CurrentIndex != 0 || state.TotalQuestions != 2 {
		t.Fatalf("Estado inicial inesperado: %+v", state)
	}
	if state.Question.Question != "Capital da França?" {
		t.Errorf("Primeira questão inesperada: %+v", state.Question)
	}

	attemptID := state.AttemptID.String()

	// Next sem resposta: bloqueado, estado preservado.
	if _, err := svc.Next(ctx, attemptID); !errors.Is(err, quizsession.ErrAnswerRequired) {
		t.Fatalf("Next sem resposta deveria falhar com ErrAnswerRequired: %v", err)
	}

	state, err = svc.SelectAnswer(ctx, attemptID, 0) // Paris, correta
	if err != nil {
		t.Fatalf("SelectAnswer falhou: %v", err)
	}
	if state.SelectedOption == nil || *state.SelectedOption != 0 {
		t.Errorf("SelectedOption deveria refletir a escolha: %+v", state.SelectedOption)
	}

	if _, err := svc.Next(ctx, attemptID); err != nil {
		t.Fatalf("Next falhou: %v", err)
	}

	// Voltar preserva a resposta da primeira questão.
	state, err = svc.Previous(ctx, attemptID)
	if err != nil {
		t.Fatalf("Previous falhou: %v", err)
	}
	if state.CurrentIndex != 0 || state.SelectedOption == nil {
		t.Errorf("Previous deveria voltar mantendo a resposta: %+v", state)
	}

	if _, err := svc.Next(ctx, attemptID); err != nil {
		t.Fatalf("Next falhou: %v", err)
	}

	if _, err := svc.SelectAnswer(ctx, attemptID, 0); err != nil { // Milão, incorreta
		t.Fatalf("SelectAnswer falhou: %v", err)
	}
	state, err = svc.Next(ctx, attemptID)
	if err != nil {
		t.Fatalf("Next final falhou: %v", err)
	}
	if !state.Completed {
		t.Fatal("Tentativa deveria estar concluída após o último Next.")
	}

	result, err := svc.Result(ctx, attemptID)
	if err != nil {
		t.Fatalf("Result falhou: %v", err)
	}
	if result.Result.Percentage != 50 || result.Chart.Correct != 1 || result.Chart.Incorrect != 1 {
		t.Errorf("Resultado inesperado: %+v", result)
	}

	// Conclusão persiste o resumo no histórico.
	if len(repo.created) != 1 {
		t.Fatalf("Esperado 1 registro persistido, recebidos %d", len(repo.created))
	}
	rec := repo.created[0]
	if rec.UserID != userID || rec.Percentage != 50 || rec.CorrectCount != 1 || rec.TotalQuestions != 2 {
		t.Errorf("Registro persistido inesperado: %+v", rec)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History falhou: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("Histórico deveria ter 1 registro, tem %d", len(history))
	}
}

func TestQuizServiceRetake(t *testing.T) {
	repo := &fakeAttemptRepo{}
	svc := NewService(NewAttemptStore(), repo)
	ctx := authedContext(uuid.New())

	state, err := svc.StartAttempt(ctx, twoQuestionDefinition())
	if err != nil {
		t.Fatalf("StartAttempt falhou: %v", err)
	}
	attemptID := state.AttemptID.String()

	for i := 0; i < 2; i++ {
		if _, err := svc.SelectAnswer(ctx, attemptID, 0); err != nil {
			t.Fatalf("SelectAnswer falhou: %v", err)
		}
		if _, err := svc.Next(ctx, attemptID); err != nil {
			t.Fatalf("Next falhou: %v", err)
		}
	}

	state, err = svc.Retake(ctx, attemptID)
	if err != nil {
		t.Fatalf("Retake falhou: %v", err)
	}
	if state.Completed || state.CurrentIndex != 0 || state.SelectedOption != nil {
		t.Errorf("Retake deveria voltar ao estado inicial: %+v", state)
	}

	// A segunda conclusão gera um novo registro de histórico.
	for i := 0; i < 2; i++ {
		if _, err := svc.SelectAnswer(ctx, attemptID, 1); err != nil {
			t.Fatalf("SelectAnswer falhou: %v", err)
		}
		if _, err := svc.Next(ctx, attemptID); err != nil {
			t.Fatalf("Next falhou: %v", err)
		}
	}
	if len(repo.created) != 2 {
		t.Errorf("Esperados 2 registros após retake concluído, recebidos %d", len(repo.created))
	}
	if repo.created[0].ID == repo.created[1].ID {
		t.Error("Cada conclusão deveria gerar um registro com ID próprio.")
	}
}

func TestQuizServiceAuthorization(t *testing.T) {
	svc := NewService(NewAttemptStore(), &fakeAttemptRepo{})

	t.Run("NoClaims", func(t *testing.T) {
		_, err := svc.StartAttempt(context.Background(), twoQuestionDefinition())
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Esperado ErrUnauthorized, recebido %v", err)
		}
	})

	t.Run("ForeignAttempt", func(t *testing.T) {
		owner := authedContext(uuid.New())
		state, err := svc.StartAttempt(owner, twoQuestionDefinition())
		if err != nil {
			t.Fatalf("StartAttempt falhou: %v", err)
		}

		intruder := authedContext(uuid.New())
		if _, err := svc.GetAttempt(intruder, state.AttemptID.String()); !errors.Is(err, ErrAttemptNotFound) {
			t.Errorf("Tentativa alheia deveria parecer inexistente: %v", err)
		}
	})

	t.Run("RejectsEmptyDefinition", func(t *testing.T) {
		ctx := authedContext(uuid.New())
		_, err := svc.StartAttempt(ctx, quizsession.Definition{Title: "vazio"})
		if !errors.Is(err, quizsession.ErrNoQuestions) {
			t.Errorf("Definição vazia deveria ser rejeitada: %v", err)
		}
	})
}
