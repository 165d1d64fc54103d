package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/utils"
)

// APIClient serves Gemini through the Generative Language API with an API
// key. It is used when no Google Cloud project is configured.
type APIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *logrus.Entry
}

// NewAPIClient creates a key-authenticated Gemini client. baseURL is the API
// root, e.g. https://generativelanguage.googleapis.com/v1beta
func NewAPIClient(apiKey, baseURL, model string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	model = strings.TrimPrefix(model, "models/")
	return &APIClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
		log:        logger.For("Gemini").WithField("model", model),
	}
}

type apiBlob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type apiPart struct {
	Text       string   `json:"text,omitempty"`
	InlineData *apiBlob `json:"inlineData,omitempty"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []apiContent     `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content apiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Name implements llm.Provider
func (c *APIClient) Name() string {
	return ProviderName
}

// Generate implements llm.Provider
func (c *APIClient) Generate(ctx context.Context, prompt string, history []llm.Turn) (string, error) {
	contents := make([]apiContent, 0, len(history)+1)
	for _, turn := range history {
		if strings.TrimSpace(turn.Text) == "" {
			continue
		}
		contents = append(contents, apiContent{
			Role:  llm.NormalizeRole(turn.Role),
			Parts: []apiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, apiContent{Role: llm.RoleUser, Parts: []apiPart{{Text: prompt}}})

	return c.generate(ctx, contents)
}

// GenerateFromDocument sends the document inline next to the prompt
func (c *APIClient) GenerateFromDocument(ctx context.Context, data []byte, mimeType, prompt string) (string, error) {
	text, err := c.generate(ctx, []apiContent{{
		Role: llm.RoleUser,
		Parts: []apiPart{
			{InlineData: &apiBlob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
			{Text: prompt},
		},
	}})
	if err != nil {
		return "", err
	}

	c.log.WithFields(logrus.Fields{"mime": mimeType, "bytes": len(data)}).Info("parsed document")
	return text, nil
}

// Close is a no-op; the shared HTTP client outlives this provider
func (c *APIClient) Close() error {
	return nil
}

func (c *APIClient) generate(ctx context.Context, contents []apiContent) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         contents,
		GenerationConfig: generationConfig{Temperature: 0.2, TopP: 0.8, MaxOutputTokens: 8192},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	defer resp.Body.Close()

	if err := utils.CheckResponse(resp, "Gemini API"); err != nil {
		return "", err
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 {
		return "", llm.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", llm.ErrEmptyResponse
	}
	return sb.String(), nil
}
