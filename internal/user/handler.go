package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyforge/studyforge-lambda/internal/auth"
	"github.com/studyforge/studyforge-lambda/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Code == "" {
		log.Warn("Corpo inválido para login com Google")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.LoginWithGoogle(r.Context(), payload.Code)
	if err != nil {
		if errors.Is(err, ErrInvalidAuthCode) {
			http.Error(w, "invalid authorization code", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Falha no login com Google")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	accessToken, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar access token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.RefreshTokenDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetAuthCookies(w, accessToken, refreshToken)
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_jwt")
	if err != nil || cookie.Value == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Refresh token inválido")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateJWT(claims.UserID, claims.Role, auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar access token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.GenerateJWT(claims.UserID, claims.Role, auth.RefreshTokenDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetAuthCookies(w, accessToken, refreshToken)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Falha ao buscar usuário autenticado")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
