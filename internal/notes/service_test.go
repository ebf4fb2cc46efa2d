package notes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/codeexec"
	"github.com/studyforge/studyforge-lambda/internal/pdfclient"
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
	raw, err := f.GenerateText(ctx, system, user)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

type fakeNoteRepo struct {
	sets map[string]*NoteSet
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{sets: map[string]*NoteSet{}}
}

func (f *fakeNoteRepo) Create(set *NoteSet) error {
	f.sets[set.ID.String()] = set
	return nil
}

func (f *fakeNoteRepo) GetByID(id string) (*NoteSet, error) {
	return f.sets[id], nil
}

func (f *fakeNoteRepo) ListByUser(userID string) ([]*NoteSet, error) {
	var out []*NoteSet
	for _, set := range f.sets {
		if set.UserID.String() == userID {
			out = append(out, set)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) UpdatePdfURL(id string, url string) error {
	set, ok := f.sets[id]
	if !ok {
		return errors.New("not found")
	}
	set.PdfURL = url
	return nil
}

type fakePdfClient struct {
	url     string
	lastReq pdfclient.RenderRequest
}

func (f *fakePdfClient) Render(ctx context.Context, req pdfclient.RenderRequest) (*pdfclient.RenderResponse, error) {
	f.lastReq = req
	return &pdfclient.RenderResponse{URL: f.url}, nil
}

type fakeExecutor struct {
	result  *codeexec.ExecuteResult
	err     error
	lastReq codeexec.ExecuteRequest
}

func (f *fakeExecutor) Execute(ctx context.Context, req codeexec.ExecuteRequest) (*codeexec.ExecuteResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func authedContext(userID uuid.UUID) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UserID: userID.String(),
		Role:   "student",
	})
}

func TestGenerate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := &fakeProvider{
			response: `[{"title": "Listas", "content": "Listas são mutáveis.", "code": "print([1])", "language": "python"}]`,
		}
		svc := NewService(provider, newFakeNoteRepo(), &fakePdfClient{}, &fakeExecutor{})

		sections, err := svc.Generate(context.Background(), GenerateRequest{Topic: "Python", Length: "short"})
		if err != nil {
			t.Fatalf("Generate falhou: %v", err)
		}
		if len(sections) != 1 || sections[0].Language != "python" {
			t.Errorf("Seções inesperadas: %+v", sections)
		}
		if !strings.Contains(provider.lastUser, "3 sections") {
			t.Errorf("Prompt não refletiu o tamanho pedido: %q", provider.lastUser)
		}
	})

	t.Run("MissingTopic", func(t *testing.T) {
		svc := NewService(&fakeProvider{}, newFakeNoteRepo(), &fakePdfClient{}, &fakeExecutor{})

		if _, err := svc.Generate(context.Background(), GenerateRequest{}); !errors.Is(err, ErrTopicRequired) {
			t.Errorf("Esperado ErrTopicRequired, recebido %v", err)
		}
	})

	t.Run("SectionWithoutContent", func(t *testing.T) {
		provider := &fakeProvider{response: `[{"title": "a", "content": ""}]`}
		svc := NewService(provider, newFakeNoteRepo(), &fakePdfClient{}, &fakeExecutor{})

		if _, err := svc.Generate(context.Background(), GenerateRequest{Topic: "x"}); !errors.Is(err, ErrMalformedSections) {
			t.Errorf("Seção sem conteúdo deveria falhar com ErrMalformedSections: %v", err)
		}
	})
}

func TestSaveGetAndPdf(t *testing.T) {
	repo := newFakeNoteRepo()
	pdf := &fakePdfClient{url: "https://cdn.example.com/notes.pdf"}
	svc := NewService(&fakeProvider{}, repo, pdf, &fakeExecutor{})

	userID := uuid.New()
	ctx := authedContext(userID)

	set, err := svc.Save(ctx, SaveRequest{
		Topic: "Estruturas de dados",
		Sections: []Section{
			{Title: "Pilhas", Content: "LIFO.", Code: "s = []", Language: "python"},
			{Title: "Filas", Content: "FIFO."},
		},
	})
	if err != nil {
		t.Fatalf("Save falhou: %v", err)
	}

	got, err := svc.Get(ctx, set.ID.String())
	if err != nil {
		t.Fatalf("Get falhou: %v", err)
	}
	if got.Topic != "Estruturas de dados" {
		t.Errorf("Tópico inesperado: %q", got.Topic)
	}

	// Conjunto de outro usuário é invisível.
	if _, err := svc.Get(authedContext(uuid.New()), set.ID.String()); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("Esperado ErrSetNotFound, recebido %v", err)
	}

	url, err := svc.RenderPdf(ctx, set.ID.String())
	if err != nil {
		t.Fatalf("RenderPdf falhou: %v", err)
	}
	if url != "https://cdn.example.com/notes.pdf" {
		t.Errorf("URL inesperada: %q", url)
	}
	if len(pdf.lastReq.Sections) != 2 || pdf.lastReq.Sections[0].Code != "s = []" {
		t.Errorf("Payload do PDF inesperado: %+v", pdf.lastReq)
	}

	summaries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if len(summaries) != 1 || summaries[0].NumSections != 2 || summaries[0].PdfURL != url {
		t.Errorf("Listagem inesperada: %+v", summaries)
	}
}

func TestRunCode(t *testing.T) {
	executor := &fakeExecutor{result: &codeexec.ExecuteResult{Output: "42", ExitCode: 0}}
	svc := NewService(&fakeProvider{}, newFakeNoteRepo(), &fakePdfClient{}, executor)

	ctx := authedContext(uuid.New())
	result, err := svc.RunCode(ctx, codeexec.ExecuteRequest{Language: "python", Code: "print(42)"})
	if err != nil {
		t.Fatalf("RunCode falhou: %v", err)
	}
	if result.Output != "42" {
		t.Errorf("Saída inesperada: %q", result.Output)
	}
	if executor.lastReq.Language != "python" {
		t.Errorf("Linguagem não repassada: %+v", executor.lastReq)
	}

	if _, err := svc.RunCode(context.Background(), codeexec.ExecuteRequest{Language: "python"}); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("RunCode sem claims deveria falhar com ErrUnauthorized: %v", err)
	}
}
