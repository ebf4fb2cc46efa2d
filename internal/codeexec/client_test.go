package codeexec

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestExecute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/execute" {
				t.Errorf("Caminho inesperado: %s", r.URL.Path)
			}

			var payload pistonExecutePayload
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("Payload inválido: %v", err)
			}
			if payload.Language != "python" || payload.Version == "" {
				t.Errorf("Payload inesperado: %+v", payload)
			}
			if len(payload.Files) != 1 || payload.Files[0].Name != "main.py" {
				t.Errorf("Arquivo inesperado: %+v", payload.Files)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"run": {"stdout": "ola\n", "stderr": "", "output": "ola\n", "code": 0}}`))
		}))
		defer server.Close()

		os.Setenv("PISTON_API_URL", server.URL)
		client := NewClient()

		result, err := client.Execute(context.Background(), ExecuteRequest{
			Language: "python",
			Code:     `print("ola")`,
		})
		if err != nil {
			t.Fatalf("Execute falhou: %v", err)
		}
		if result.Output != "ola" || result.ExitCode != 0 {
			t.Errorf("Resultado inesperado: %+v", result)
		}
	})

	t.Run("UnsupportedLanguage", func(t *testing.T) {
		os.Setenv("PISTON_API_URL", "http://localhost:0")
		client := NewClient()

		_, err := client.Execute(context.Background(), ExecuteRequest{Language: "cobol", Code: "x"})
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("Esperado ErrUnsupportedLanguage, recebido %v", err)
		}
	})

	t.Run("EmptyOutput", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"run": {"stdout": "", "stderr": "", "output": "", "code": 0}}`))
		}))
		defer server.Close()

		os.Setenv("PISTON_API_URL", server.URL)
		client := NewClient()

		result, err := client.Execute(context.Background(), ExecuteRequest{Language: "go", Code: "package main"})
		if err != nil {
			t.Fatalf("Execute falhou: %v", err)
		}
		if result.Output != "No output." {
			t.Errorf("Saída vazia deveria virar o marcador padrão: %q", result.Output)
		}
	})

	t.Run("UpstreamError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer server.Close()

		os.Setenv("PISTON_API_URL", server.URL)
		client := NewClient()

		if _, err := client.Execute(context.Background(), ExecuteRequest{Language: "python", Code: "x"}); err == nil {
			t.Error("Erro do upstream deveria ser propagado.")
		}
	})
}
