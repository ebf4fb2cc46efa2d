package codeexec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/studyforge/studyforge-lambda/internal/config"
)

const defaultBaseURL = "https://emkc.org/api/v2/piston"

var ErrUnsupportedLanguage = errors.New("language not supported for execution")

// pistonLang mapeia a linguagem detectada para a versão e o nome de arquivo
// que a API Piston espera.
type pistonLang struct {
	Language string
	Version  string
	Filename string
}

var supportedLanguages = map[string]pistonLang{
	"python":     {Language: "python", Version: "3.10.0", Filename: "main.py"},
	"javascript": {Language: "javascript", Version: "16.3.0", Filename: "main.js"},
	"java":       {Language: "java", Version: "15.0.2", Filename: "Main.java"},
	"go":         {Language: "go", Version: "1.16.2", Filename: "main.go"},
	"c":          {Language: "c", Version: "10.2.0", Filename: "main.c"},
	"cpp":        {Language: "c++", Version: "10.2.0", Filename: "main.cpp"},
}

type ExecuteRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

type ExecuteResult struct {
	Output   string `json:"output"`
	Stderr   string `json:"stderr,omitempty"`
	ExitCode int    `json:"exit_code"`
}

type Client interface {
	Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResult, error)
}

type pistonClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() Client {
	baseURL := os.Getenv("PISTON_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &pistonClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type pistonExecutePayload struct {
	Language string       `json:"language"`
	Version  string       `json:"version"`
	Files    []pistonFile `json:"files"`
}

type pistonFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type pistonRunResult struct {
	Run struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
		Output string `json:"output"`
		Code   int    `json:"code"`
	} `json:"run"`
}

func (c *pistonClient) Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResult, error) {
	log := config.WithContext(ctx)

	lang, ok := supportedLanguages[strings.ToLower(req.Language)]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	payload := pistonExecutePayload{
		Language: lang.Language,
		Version:  lang.Version,
		Files:    []pistonFile{{Name: lang.Filename, Content: req.Code}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/execute", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Error("Falha ao chamar a API de execução de código")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("code execution API returned status %d", resp.StatusCode)
	}

	var result pistonRunResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	output := strings.TrimSpace(result.Run.Output)
	if output == "" {
		output = "No output."
	}

	return &ExecuteResult{
		Output:   output,
		Stderr:   strings.TrimSpace(result.Run.Stderr),
		ExitCode: result.Run.Code,
	}, nil
}
