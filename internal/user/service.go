package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/studyforge/studyforge-lambda/internal/config"
	"golang.org/x/oauth2"
)

var ErrInvalidAuthCode = errors.New("invalid google authorization code")

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, authCode string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &userService{repo: repo, oauthConfig: oauthConfig}
}

func (s *userService) LoginWithGoogle(ctx context.Context, authCode string) (*User, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, authCode)
	if err != nil {
		log.WithError(err).Warn("Falha ao trocar o código de autorização do Google")
		return nil, ErrInvalidAuthCode
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		log.WithError(err).Error("Falha ao buscar o perfil do Google")
		return nil, err
	}

	u, err := s.repo.GetByGoogleID(profile.ID)
	if err != nil {
		log.WithError(err).Error("Falha ao buscar usuário por Google ID")
		return nil, err
	}

	if u == nil {
		u = &User{
			GoogleID:  profile.ID,
			Name:      profile.Name,
			Email:     profile.Email,
			AvatarURL: profile.Picture,
			Role:      "student",
		}
		if err := s.storeTokens(u, token); err != nil {
			return nil, err
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Falha ao criar usuário")
			return nil, err
		}
		log.WithField("user_id", u.ID.String()).Info("Novo usuário criado via Google")
		return u, nil
	}

	u.Name = profile.Name
	u.AvatarURL = profile.Picture
	if err := s.storeTokens(u, token); err != nil {
		return nil, err
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Falha ao atualizar usuário")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("Login via Google concluído")
	return u, nil
}

func (s *userService) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := s.oauthConfig.Client(ctx, token)

	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, errors.New("google userinfo response is incomplete")
	}
	return &profile, nil
}

func (s *userService) storeTokens(u *User, token *oauth2.Token) error {
	encrypted, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return err
	}
	u.EncryptedGoogleAccessToken = encrypted

	if token.RefreshToken != "" {
		encryptedRefresh, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			return err
		}
		u.EncryptedGoogleRefreshToken = encryptedRefresh
	}

	u.UpdatedAt = time.Now()
	return nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Falha ao buscar usuário")
		return nil, err
	}
	return u, nil
}
