// Package screening implements the recruiting tasks backed by the LLM
// provider chain and the resume upload pipeline.
package screening

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/storage"
)

// maxPromptPayload caps how much of any interpolated document goes into a prompt
const maxPromptPayload = 30000

// DocumentParser reads a raw document with a multimodal model
type DocumentParser interface {
	GenerateFromDocument(ctx context.Context, data []byte, mimeType, prompt string) (string, error)
}

// Embedder turns text into a vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}

// PageFetcher reads the visible text of a public web page
type PageFetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

// Service runs screening tasks against the provider chain
type Service struct {
	chain       *llm.Chain
	embedder    Embedder
	docParser   DocumentParser
	pages       PageFetcher
	transcripts storage.TranscriptStore
	log         *logrus.Entry
}

// Option configures optional collaborators
type Option func(*Service)

// WithEmbedder enables the embeddings task
func WithEmbedder(e Embedder) Option {
	return func(s *Service) { s.embedder = e }
}

// WithDocumentParser enables multimodal parsing of documents without a text layer
func WithDocumentParser(p DocumentParser) Option {
	return func(s *Service) { s.docParser = p }
}

// WithPageFetcher lets portfolio reviews read the linked portfolio page
func WithPageFetcher(p PageFetcher) Option {
	return func(s *Service) { s.pages = p }
}

// WithTranscripts enables stored candidate-persona transcripts
func WithTranscripts(t storage.TranscriptStore) Option {
	return func(s *Service) { s.transcripts = t }
}

// NewService creates a screening service on a provider chain
func NewService(chain *llm.Chain, opts ...Option) *Service {
	s := &Service{
		chain: chain,
		log:   logger.For("Screening"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Providers returns the configured provider names in priority order
func (s *Service) Providers() []string {
	return s.chain.Names()
}

// TranscriptsEnabled reports whether candidate chats are persisted
func (s *Service) TranscriptsEnabled() bool {
	return s.transcripts != nil
}

// CanParseDocuments reports whether raw documents can be parsed without
// extracted text
func (s *Service) CanParseDocuments() bool {
	return s.docParser != nil
}

// ValidationError is a missing or malformed request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is or wraps a *ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// generate runs one JSON task through the chain
func (s *Service) generate(ctx context.Context, task, prompt string, keys []string, out interface{}) (llm.Result, error) {
	res, err := s.chain.GenerateJSON(ctx, llm.Request{Prompt: prompt, Required: keys}, out)
	if err != nil {
		return res, fmt.Errorf("%s failed: %w", task, err)
	}
	if len(res.Missing) > 0 {
		s.log.WithFields(logrus.Fields{"task": task, "missing": res.Missing}).Warn("provider reply missing keys")
	}
	return res, nil
}

// isEmptyJSON treats absent, null, empty string and empty object payloads as missing
func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "{}", `""`, "[]":
		return true
	}
	return false
}

// payloadText renders a JSON payload for interpolation into a prompt
func payloadText(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return truncate(string(raw), maxPromptPayload)
	}
	return truncate(buf.String(), maxPromptPayload)
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func toTurns(history []models.ChatTurn) []llm.Turn {
	turns := make([]llm.Turn, 0, len(history))
	for _, h := range history {
		if body := strings.TrimSpace(h.Body()); body != "" {
			turns = append(turns, llm.Turn{Role: llm.NormalizeRole(h.Role), Text: body})
		}
	}
	return turns
}
