package pdfclient

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

var ErrMissingBaseURL = errors.New("PDF_SERVICE_URL is not configured")

// Section é um bloco do documento a ser renderizado. Code é opcional e
// renderizado em fonte monoespaçada pelo serviço.
type Section struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
	Code    string `json:"code,omitempty"`
}

type RenderRequest struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type RenderResponse struct {
	URL string `json:"url"`
}

// Client fala com o serviço externo de renderização de PDFs. A geração em
// si é responsabilidade do serviço; aqui só enviamos o conteúdo tipado e
// guardamos a URL devolvida.
type Client interface {
	Render(ctx context.Context, req RenderRequest) (*RenderResponse, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient() Client {
	return &httpClient{
		baseURL: strings.TrimSuffix(os.Getenv("PDF_SERVICE_URL"), "/"),
		client: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
}

func (c *httpClient) Render(ctx context.Context, req RenderRequest) (*RenderResponse, error) {
	log := config.WithContext(ctx)

	if c.baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.WithError(err).Error("Falha ao chamar o serviço de PDF")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("pdf service returned status %d", resp.StatusCode)
	}

	var rendered RenderResponse
	if err := json.NewDecoder(resp.Body).Decode(&rendered); err != nil {
		return nil, err
	}
	if rendered.URL == "" {
		return nil, errors.New("pdf service returned an empty url")
	}
	return &rendered, nil
}
