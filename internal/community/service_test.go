package community

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/codeexec"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/user"
)

type fakeCommunityRepo struct {
	communities map[string]*Community
	members     []*CommunityMember
	shared      []*SharedNote
}

func newFakeCommunityRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{communities: map[string]*Community{}}
}

func (f *fakeCommunityRepo) Create(c *Community) error {
	f.communities[c.Code] = c
	return nil
}

func (f *fakeCommunityRepo) GetByCode(code string) (*Community, error) {
	return f.communities[code], nil
}

func (f *fakeCommunityRepo) AddMember(m *CommunityMember) error {
	f.members = append(f.members, m)
	return nil
}

func (f *fakeCommunityRepo) IsMember(communityID, userID string) (bool, error) {
	for _, m := range f.members {
		if m.CommunityID.String() == communityID && m.UserID.String() == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCommunityRepo) CountMembers(communityID string) (int64, error) {
	var count int64
	for _, m := range f.members {
		if m.CommunityID.String() == communityID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommunityRepo) ListByMember(userID string) ([]*Community, error) {
	var out []*Community
	for _, m := range f.members {
		if m.UserID.String() != userID {
			continue
		}
		for _, c := range f.communities {
			if c.ID == m.CommunityID {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCommunityRepo) CreateSharedNote(n *SharedNote) error {
	f.shared = append(f.shared, n)
	return nil
}

func (f *fakeCommunityRepo) ListSharedNotes(communityID string) ([]*SharedNote, error) {
	var out []*SharedNote
	for _, n := range f.shared {
		if n.CommunityID.String() == communityID {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) GetByID(id string) (*user.User, error)       { return f.users[id], nil }
func (f *fakeUserRepo) GetByGoogleID(id string) (*user.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(u *user.User) error                   { return nil }
func (f *fakeUserRepo) Update(u *user.User) error                   { return nil }

type fakeNoteService struct {
	sets map[string]*notes.NoteSet
}

func (f *fakeNoteService) Get(ctx context.Context, id string) (*notes.NoteSet, error) {
	set, ok := f.sets[id]
	if !ok {
		return nil, notes.ErrSetNotFound
	}
	return set, nil
}

func (f *fakeNoteService) Generate(ctx context.Context, req notes.GenerateRequest) ([]notes.Section, error) {
	return nil, errors.New("não usado")
}

func (f *fakeNoteService) Save(ctx context.Context, req notes.SaveRequest) (*notes.NoteSet, error) {
	return nil, errors.New("não usado")
}

func (f *fakeNoteService) List(ctx context.Context) ([]notes.SetSummaryDTO, error) {
	return nil, errors.New("não usado")
}

func (f *fakeNoteService) RenderPdf(ctx context.Context, id string) (string, error) {
	return "", errors.New("não usado")
}

func (f *fakeNoteService) RunCode(ctx context.Context, req codeexec.ExecuteRequest) (*codeexec.ExecuteResult, error) {
	return nil, errors.New("não usado")
}

func authedContext(userID uuid.UUID) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UserID: userID.String(),
		Role:   "student",
	})
}

func newTestService(repo *fakeCommunityRepo, noteSvc *fakeNoteService, users map[string]*user.User) CommunityService {
	if noteSvc == nil {
		noteSvc = &fakeNoteService{sets: map[string]*notes.NoteSet{}}
	}
	return NewService(repo, &fakeUserRepo{users: users}, noteSvc)
}

func TestCreateAndSubscribe(t *testing.T) {
	repo := newFakeCommunityRepo()
	svc := newTestService(repo, nil, nil)

	ownerID := uuid.New()
	c, err := svc.Create(authedContext(ownerID), CreateRequest{Name: "Turma de Cálculo"})
	if err != nil {
		t.Fatalf("Create falhou: %v", err)
	}
	if len(c.Code) != 10 {
		t.Errorf("Código curto inesperado: %q", c.Code)
	}

	// O dono já entra inscrito.
	member, err := repo.IsMember(c.ID.String(), ownerID.String())
	if err != nil || !member {
		t.Errorf("Dono deveria estar inscrito: member=%v err=%v", member, err)
	}

	otherID := uuid.New()
	if _, err := svc.Subscribe(authedContext(otherID), c.Code); err != nil {
		t.Fatalf("Subscribe falhou: %v", err)
	}
	if _, err := svc.Subscribe(authedContext(otherID), c.Code); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("Inscrição repetida deveria falhar com ErrAlreadyMember: %v", err)
	}
	if _, err := svc.Subscribe(authedContext(otherID), "inexistente"); !errors.Is(err, ErrCommunityNotFound) {
		t.Errorf("Código desconhecido deveria falhar com ErrCommunityNotFound: %v", err)
	}

	dto, err := svc.Fetch(authedContext(otherID), c.Code)
	if err != nil {
		t.Fatalf("Fetch falhou: %v", err)
	}
	if dto.NumMembers != 2 || dto.Name != "Turma de Cálculo" {
		t.Errorf("Detalhes inesperados: %+v", dto)
	}

	subscribed, err := svc.Subscribed(authedContext(otherID))
	if err != nil {
		t.Fatalf("Subscribed falhou: %v", err)
	}
	if len(subscribed) != 1 || subscribed[0].Code != c.Code {
		t.Errorf("Listagem de inscrições inesperada: %+v", subscribed)
	}

	if _, err := svc.Create(authedContext(ownerID), CreateRequest{}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Create sem nome deveria falhar com ErrNameRequired: %v", err)
	}
}

func TestShareNote(t *testing.T) {
	repo := newFakeCommunityRepo()
	sharerID := uuid.New()
	noteID := uuid.New()

	noteSvc := &fakeNoteService{sets: map[string]*notes.NoteSet{
		noteID.String(): {ID: noteID, UserID: sharerID, Topic: "Derivadas", PdfURL: "https://cdn.example.com/derivadas.pdf"},
	}}
	users := map[string]*user.User{
		sharerID.String(): {ID: sharerID, Name: "Ana"},
	}
	svc := newTestService(repo, noteSvc, users)

	ctx := authedContext(sharerID)
	c, err := svc.Create(ctx, CreateRequest{Name: "Cálculo I"})
	if err != nil {
		t.Fatalf("Create falhou: %v", err)
	}

	shared, err := svc.ShareNote(ctx, ShareNoteRequest{CommunityID: c.Code, NoteSetID: noteID.String()})
	if err != nil {
		t.Fatalf("ShareNote falhou: %v", err)
	}
	if shared.Topic != "Derivadas" || shared.SharedByName != "Ana" {
		t.Errorf("Nota compartilhada inesperada: %+v", shared)
	}

	listed, err := svc.SharedNotes(ctx, c.Code)
	if err != nil {
		t.Fatalf("SharedNotes falhou: %v", err)
	}
	if len(listed) != 1 || listed[0].PdfURL != "https://cdn.example.com/derivadas.pdf" {
		t.Errorf("Listagem de notas inesperada: %+v", listed)
	}

	// Não membro não compartilha nem lista.
	strangerCtx := authedContext(uuid.New())
	if _, err := svc.ShareNote(strangerCtx, ShareNoteRequest{CommunityID: c.Code, NoteSetID: noteID.String()}); !errors.Is(err, ErrNotMember) {
		t.Errorf("Não membro deveria falhar com ErrNotMember: %v", err)
	}
	if _, err := svc.SharedNotes(strangerCtx, c.Code); !errors.Is(err, ErrNotMember) {
		t.Errorf("Não membro deveria falhar com ErrNotMember: %v", err)
	}

	// Nota inexistente.
	if _, err := svc.ShareNote(ctx, ShareNoteRequest{CommunityID: c.Code, NoteSetID: uuid.New().String()}); !errors.Is(err, notes.ErrSetNotFound) {
		t.Errorf("Nota inexistente deveria falhar com ErrSetNotFound: %v", err)
	}
}
