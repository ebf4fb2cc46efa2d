package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/studyforge/studyforge-lambda/internal/auth"
)

const testSecret = "uma-chave-secreta-para-testes-segura-e-longa"
const testUserID = "user-123"
const testRole = "student"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() deveria ter causado pânico quando JWT_SECRET está vazio, mas não o fez.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT falhou: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT falhou inesperadamente: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("UserID incorreto. Esperado: %s, Recebido: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Role incorreto. Esperado: %s, Recebido: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT falhou: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT deveria ter falhado com token expirado, mas passou.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Erro incorreto retornado para token expirado. Esperado: %v, Recebido: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT falhou: %v", err)
		}

		os.Setenv("JWT_SECRET", "chave-secreta-falsa-diferente")
		auth.Init()

		_, err = auth.ValidateJWT(tokenStr)

		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()

		if err == nil {
			t.Fatal("ValidateJWT deveria ter falhado com assinatura inválida, mas passou.")
		}
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("Erro incorreto para assinatura inválida: %v", err)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.GetUserClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("Claims deveriam estar no contexto: %v", err)
		} else if claims.UserID != testUserID {
			t.Errorf("UserID incorreto no contexto: %s", claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("CookieToken", func(t *testing.T) {
		tokenStr, _ := auth.GenerateJWT(testUserID, testRole, time.Minute)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: tokenStr})
		rec := httptest.NewRecorder()

		auth.AuthMiddleware(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Status esperado 200, recebido %d", rec.Code)
		}
	})

	t.Run("BearerToken", func(t *testing.T) {
		tokenStr, _ := auth.GenerateJWT(testUserID, testRole, time.Minute)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		rec := httptest.NewRecorder()

		auth.AuthMiddleware(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Status esperado 200, recebido %d", rec.Code)
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		blocked := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("Handler não deveria ser chamado sem token.")
		})
		auth.AuthMiddleware(blocked).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Status esperado 401, recebido %d", rec.Code)
		}
	})
}
