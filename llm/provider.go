// Package llm sequences hosted text-generation providers behind one call.
package llm

import (
	"context"
	"errors"
	"strings"
)

// Roles used in conversation history
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior message in a conversation
type Turn struct {
	Role string
	Text string
}

// NormalizeRole maps client role names onto RoleUser / RoleModel
func NormalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "model", "assistant", "bot", "ai", "candidate":
		return RoleModel
	default:
		return RoleUser
	}
}

// Provider wraps a single hosted text-generation endpoint
type Provider interface {
	// Name identifies the provider in logs and results
	Name() string

	// Generate returns the raw text completion for the prompt, continuing
	// the given history when it is non-empty
	Generate(ctx context.Context, prompt string, history []Turn) (string, error)
}

var (
	// ErrAllProvidersFailed is returned when no provider produced a usable result
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProviders is returned when the chain has no configured provider
	ErrNoProviders = &noProvidersError{}

	// ErrEmptyResponse is returned by adapters that received no text
	ErrEmptyResponse = errors.New("empty response from provider")
)

type noProvidersError struct{}

func (e *noProvidersError) Error() string { return "no LLM providers configured" }

// Is lets errors.Is(ErrNoProviders, ErrAllProvidersFailed) hold
func (e *noProvidersError) Is(target error) bool {
	return target == ErrAllProvidersFailed
}

type jsonModeKey struct{}

// WithJSONMode marks ctx as expecting a JSON object reply. Adapters that
// support a native JSON response format switch it on.
func WithJSONMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, jsonModeKey{}, true)
}

// JSONMode reports whether ctx was marked by WithJSONMode
func JSONMode(ctx context.Context) bool {
	on, _ := ctx.Value(jsonModeKey{}).(bool)
	return on
}
