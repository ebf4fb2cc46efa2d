package community

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/config"
	"github.com/studyforge/studyforge-lambda/internal/notes"
	"github.com/studyforge/studyforge-lambda/internal/user"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNameRequired      = errors.New("community name is required")
	ErrCommunityNotFound = errors.New("community not found")
	ErrAlreadyMember     = errors.New("user already subscribed to this community")
	ErrNotMember         = errors.New("user is not a member of this community")
)

type CommunityService interface {
	Create(ctx context.Context, req CreateRequest) (*Community, error)
	Subscribe(ctx context.Context, code string) (*Community, error)
	Subscribed(ctx context.Context) ([]CommunityDTO, error)
	Fetch(ctx context.Context, code string) (*CommunityDTO, error)
	ShareNote(ctx context.Context, req ShareNoteRequest) (*SharedNote, error)
	SharedNotes(ctx context.Context, code string) ([]*SharedNote, error)
}

type communityService struct {
	repo    CommunityRepository
	users   user.UserRepository
	noteSvc notes.NoteService
	now     func() time.Time
}

func NewService(repo CommunityRepository, users user.UserRepository, noteSvc notes.NoteService) CommunityService {
	return &communityService{
		repo:    repo,
		users:   users,
		noteSvc: noteSvc,
		now:     time.Now,
	}
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

func (s *communityService) Create(ctx context.Context, req CreateRequest) (*Community, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	c := &Community{
		ID:      uuid.New(),
		Code:    NewCode(s.now()),
		Name:    req.Name,
		OwnerID: userID,
	}
	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("Falha ao criar comunidade")
		return nil, err
	}

	// Quem cria já entra como membro.
	member := &CommunityMember{ID: uuid.New(), CommunityID: c.ID, UserID: userID}
	if err := s.repo.AddMember(member); err != nil {
		log.WithError(err).Error("Falha ao inscrever o dono da comunidade")
		return nil, err
	}

	log.WithField("code", c.Code).Info("Comunidade criada")
	return c, nil
}

func (s *communityService) Subscribe(ctx context.Context, code string) (*Community, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCommunityNotFound
	}

	member, err := s.repo.IsMember(c.ID.String(), userID.String())
	if err != nil {
		return nil, err
	}
	if member {
		return nil, ErrAlreadyMember
	}

	if err := s.repo.AddMember(&CommunityMember{ID: uuid.New(), CommunityID: c.ID, UserID: userID}); err != nil {
		log.WithError(err).Error("Falha ao inscrever usuário na comunidade")
		return nil, err
	}

	log.WithField("code", c.Code).Info("Usuário inscrito na comunidade")
	return c, nil
}

func (s *communityService) Subscribed(ctx context.Context) ([]CommunityDTO, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	communities, err := s.repo.ListByMember(userID.String())
	if err != nil {
		return nil, err
	}

	dtos := make([]CommunityDTO, 0, len(communities))
	for _, c := range communities {
		count, err := s.repo.CountMembers(c.ID.String())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, communityDTO(c, count))
	}
	return dtos, nil
}

func (s *communityService) Fetch(ctx context.Context, code string) (*CommunityDTO, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCommunityNotFound
	}

	count, err := s.repo.CountMembers(c.ID.String())
	if err != nil {
		return nil, err
	}

	dto := communityDTO(c, count)
	return &dto, nil
}

func (s *communityService) ShareNote(ctx context.Context, req ShareNoteRequest) (*SharedNote, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByCode(req.CommunityID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCommunityNotFound
	}

	member, err := s.repo.IsMember(c.ID.String(), userID.String())
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotMember
	}

	// Só é possível compartilhar uma nota que o próprio usuário salvou; o
	// serviço de notas já aplica essa checagem de posse.
	set, err := s.noteSvc.Get(ctx, req.NoteSetID)
	if err != nil {
		return nil, err
	}

	sharedByName := ""
	if u, err := s.users.GetByID(userID.String()); err == nil && u != nil {
		sharedByName = u.Name
	}

	shared := &SharedNote{
		ID:           uuid.New(),
		CommunityID:  c.ID,
		NoteSetID:    set.ID,
		Topic:        set.Topic,
		PdfURL:       set.PdfURL,
		SharedBy:     userID,
		SharedByName: sharedByName,
	}
	if err := s.repo.CreateSharedNote(shared); err != nil {
		log.WithError(err).Error("Falha ao compartilhar nota na comunidade")
		return nil, err
	}

	log.WithField("code", c.Code).Info("Nota compartilhada na comunidade")
	return shared, nil
}

func (s *communityService) SharedNotes(ctx context.Context, code string) ([]*SharedNote, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCommunityNotFound
	}

	member, err := s.repo.IsMember(c.ID.String(), userID.String())
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotMember
	}

	return s.repo.ListSharedNotes(c.ID.String())
}

func communityDTO(c *Community, members int64) CommunityDTO {
	return CommunityDTO{
		Code:       c.Code,
		Name:       c.Name,
		NumMembers: int(members),
		CreatedAt:  c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
