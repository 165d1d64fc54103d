package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hireflow/backend/utils"
)

// Embedder calls the Gemini embedContent REST endpoint
type Embedder struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewEmbedder creates an embeddings client. baseURL is the API root, e.g.
// https://generativelanguage.googleapis.com/v1beta
func NewEmbedder(apiKey, baseURL, model string, httpClient *http.Client) *Embedder {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Embedder{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      strings.TrimPrefix(model, "models/"),
		httpClient: httpClient,
	}
}

// Model returns the embedding model name
func (e *Embedder) Model() string {
	return e.model
}

type embedRequest struct {
	Model   string       `json:"model"`
	Content embedContent `json:"content"`
}

type embedContent struct {
	Parts []embedPart `json:"parts"`
}

type embedPart struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Embed returns the embedding vector for text
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.apiKey == "" {
		return nil, fmt.Errorf("embedding API key not configured")
	}

	body, err := json.Marshal(embedRequest{
		Model:   "models/" + e.model,
		Content: embedContent{Parts: []embedPart{{Text: text}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:embedContent?key=%s", e.baseURL, e.model, url.QueryEscape(e.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := utils.CheckResponse(resp, "embedding API"); err != nil {
		return nil, err
	}

	var result embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("embedding API error: %s", result.Error.Message)
	}
	if len(result.Embedding.Values) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}

	return result.Embedding.Values, nil
}
