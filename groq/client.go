// Package groq adapts Groq's OpenAI-compatible chat completions API to llm.Provider.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/utils"
)

// ProviderName identifies Groq in logs and results
const ProviderName = "groq"

const systemPrompt = "You are an expert technical recruiting assistant. Follow the output format in the user's instructions exactly."

// Client calls the Groq chat completions endpoint
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
	log         *logrus.Entry
}

// NewClient creates a new Groq client. baseURL is the OpenAI-compatible
// root, e.g. https://api.groq.com/openai/v1
func NewClient(apiKey, baseURL, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: 0.2,
		httpClient:  httpClient,
		log:         logger.For("Groq").WithField("model", model),
	}
}

// Name implements llm.Provider
func (c *Client) Name() string {
	return ProviderName
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate implements llm.Provider. History turns are sent as prior
// user/assistant messages ahead of the prompt.
func (c *Client) Generate(ctx context.Context, prompt string, history []llm.Turn) (string, error) {
	messages := make([]message, 0, len(history)+2)
	messages = append(messages, message{Role: "system", Content: systemPrompt})
	for _, turn := range history {
		if strings.TrimSpace(turn.Text) == "" {
			continue
		}
		role := "user"
		if llm.NormalizeRole(turn.Role) == llm.RoleModel {
			role = "assistant"
		}
		messages = append(messages, message{Role: role, Content: turn.Text})
	}
	messages = append(messages, message{Role: "user", Content: prompt})

	reqBody := completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	}
	if llm.JSONMode(ctx) {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Groq request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create Groq request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Groq API error: %w", err)
	}
	defer resp.Body.Close()
	c.log.WithField("duration", time.Since(start).String()).Debug("request completed")

	if err := utils.CheckResponse(resp, "Groq API"); err != nil {
		return "", err
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode Groq response: %w", err)
	}
	if result.Error != nil && result.Error.Message != "" {
		return "", fmt.Errorf("Groq error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", llm.ErrEmptyResponse
	}

	return result.Choices[0].Message.Content, nil
}
