package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/logger"
)

// Chain tries providers in a fixed priority order, one attempt each
type Chain struct {
	providers []Provider
	log       *logrus.Entry
}

// Request is one generation request
type Request struct {
	Prompt  string
	History []Turn
	// Required lists top-level keys the caller expects. Missing keys are
	// reported in Result, not enforced.
	Required []string
}

// Result describes which provider answered
type Result struct {
	Provider string
	Attempts int
	Missing  []string
}

// NewChain creates a chain. Nil providers are skipped.
func NewChain(providers ...Provider) *Chain {
	c := &Chain{log: logger.For("LLM")}
	for _, p := range providers {
		if p != nil && !isNilProvider(p) {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

// Names returns provider names in priority order
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// Len returns the number of configured providers
func (c *Chain) Len() int {
	return len(c.providers)
}

// GenerateJSON decodes the first parseable provider response into out,
// which must be a non-nil pointer. out is left untouched on failure.
func (c *Chain) GenerateJSON(ctx context.Context, req Request, out interface{}) (Result, error) {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return Result{}, fmt.Errorf("GenerateJSON requires a non-nil pointer, got %T", out)
	}

	return c.run(WithJSONMode(ctx), req, func(text string) ([]string, error) {
		cleaned := CleanJSON(text)
		if cleaned == "" {
			return nil, ErrEmptyResponse
		}

		fresh := reflect.New(target.Elem().Type())
		if err := json.Unmarshal([]byte(cleaned), fresh.Interface()); err != nil {
			return nil, fmt.Errorf("failed to parse provider JSON: %w", err)
		}
		target.Elem().Set(fresh.Elem())

		return missingKeys(cleaned, req.Required), nil
	})
}

// GenerateText returns the first non-empty text response
func (c *Chain) GenerateText(ctx context.Context, req Request) (string, Result, error) {
	var reply string
	res, err := c.run(ctx, req, func(text string) ([]string, error) {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, ErrEmptyResponse
		}
		reply = text
		return nil, nil
	})
	return reply, res, err
}

func (c *Chain) run(ctx context.Context, req Request, accept func(text string) ([]string, error)) (Result, error) {
	if len(c.providers) == 0 {
		c.log.Warn("no providers configured")
		return Result{}, ErrNoProviders
	}

	var res Result
	var lastErr error
	lastName := ""

	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		res.Attempts++
		lastName = p.Name()
		start := time.Now()
		entry := c.log.WithField("provider", p.Name())
		entry.Debug("attempting provider")

		text, err := p.Generate(ctx, req.Prompt, req.History)
		if err == nil {
			var missing []string
			missing, err = accept(text)
			if err == nil {
				res.Provider = p.Name()
				res.Missing = missing
				fields := logrus.Fields{"duration": time.Since(start).String()}
				if len(missing) > 0 {
					fields["missing"] = missing
				}
				entry.WithFields(fields).Info("provider succeeded")
				return res, nil
			}
		}

		lastErr = err
		entry.WithError(err).WithField("duration", time.Since(start).String()).Warn("provider failed, falling through")
	}

	c.log.WithField("attempts", res.Attempts).Error("all providers failed")
	if lastName == "" {
		return res, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
	}
	return res, fmt.Errorf("%w: last provider %s: %w", ErrAllProvidersFailed, lastName, lastErr)
}

// CleanJSON strips markdown code fences and surrounding prose from a
// provider response so only the JSON value remains
func CleanJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if nl := strings.IndexByte(text, '\n'); nl >= 0 && !strings.ContainsAny(text[:nl], "{[") {
			text = text[nl+1:]
		} else {
			text = strings.TrimPrefix(strings.TrimPrefix(text, "json"), "JSON")
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	if text == "" || text[0] == '{' || text[0] == '[' {
		return text
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(text, closer)
	if end <= start {
		return text[start:]
	}
	return text[start : end+1]
}

func missingKeys(cleaned string, required []string) []string {
	if len(required) == 0 {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return append([]string(nil), required...)
	}

	var missing []string
	for _, key := range required {
		if raw, ok := obj[key]; !ok || string(raw) == "null" {
			missing = append(missing, key)
		}
	}
	return missing
}

func isNilProvider(p Provider) bool {
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
