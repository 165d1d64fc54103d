package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/config"
	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/logger"
)

// ProviderName identifies Gemini in logs and results
const ProviderName = "gemini"

// Provider is a Gemini backend usable as a chain provider and as the
// multimodal resume parser
type Provider interface {
	llm.Provider
	GenerateFromDocument(ctx context.Context, data []byte, mimeType, prompt string) (string, error)
	Close() error
}

// NewProvider picks the Gemini backend for cfg: Vertex AI when a project is
// configured, otherwise the Generative Language API with GEMINI_API_KEY.
// It returns nil, nil when neither is set.
func NewProvider(ctx context.Context, cfg *config.Config, httpClient *http.Client) (Provider, error) {
	switch cfg.GeminiMode() {
	case config.GeminiVertex:
		client, err := NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.GeminiAPI:
		return NewAPIClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, httpClient), nil
	default:
		return nil, nil
	}
}

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	log       *logrus.Entry
}

// NewClient creates a Vertex AI Gemini client for cfg.ProjectID using
// application default credentials
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("failed to create Gemini client: PROJECT_ID is required for Vertex AI")
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0.2)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &Client{
		client:    client,
		model:     model,
		modelName: cfg.GeminiModel,
		log:       logger.For("Gemini").WithField("model", cfg.GeminiModel),
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// Name implements llm.Provider
func (c *Client) Name() string {
	return ProviderName
}

// Generate implements llm.Provider. A non-empty history continues a chat
// session; otherwise the prompt is sent as a single turn.
func (c *Client) Generate(ctx context.Context, prompt string, history []llm.Turn) (string, error) {
	var (
		resp *genai.GenerateContentResponse
		err  error
	)

	if len(history) > 0 {
		session := c.model.StartChat()
		session.History = toContents(history)
		resp, err = session.SendMessage(ctx, genai.Text(prompt))
	} else {
		resp, err = c.model.GenerateContent(ctx, genai.Text(prompt))
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}

// GenerateFromDocument sends the raw document alongside the prompt using
// Gemini's multimodal input. Used when local text extraction finds nothing.
func (c *Client) GenerateFromDocument(ctx context.Context, data []byte, mimeType, prompt string) (string, error) {
	blob := genai.Blob{
		MIMEType: mimeType,
		Data:     data,
	}

	resp, err := c.model.GenerateContent(ctx, blob, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content from document: %w", err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyResponse
	}

	c.log.WithFields(logrus.Fields{"mime": mimeType, "bytes": len(data)}).Info("parsed document")
	return text, nil
}

func toContents(history []llm.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		if strings.TrimSpace(turn.Text) == "" {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  llm.NormalizeRole(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
