package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/backend/llm"
)

func TestClient_Generate(t *testing.T) {
	var got completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL+"/", "llama", srv.Client())
	history := []llm.Turn{
		{Role: "user", Text: "hello"},
		{Role: "assistant", Text: "hi"},
		{Role: "user", Text: "  "},
	}
	text, err := c.Generate(llm.WithJSONMode(context.Background()), "prompt", history)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)

	assert.Equal(t, "llama", got.Model)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "assistant", got.Messages[2].Role)
	assert.Equal(t, "prompt", got.Messages[3].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestClient_GenerateTextModeOmitsResponseFormat(t *testing.T) {
	var raw map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"plain"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL, "llama", srv.Client())
	text, err := c.Generate(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain", text)
	_, ok := raw["response_format"]
	assert.False(t, ok)
}

func TestClient_GenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		empty  bool
	}{
		{"non-2xx", http.StatusServiceUnavailable, `{"error":{"message":"down"}}`, false},
		{"error body", http.StatusOK, `{"error":{"message":"bad model"}}`, false},
		{"no choices", http.StatusOK, `{"choices":[]}`, true},
		{"blank content", http.StatusOK, `{"choices":[{"message":{"content":"  "}}]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient("key", srv.URL, "llama", srv.Client())
			_, err := c.Generate(context.Background(), "prompt", nil)
			require.Error(t, err)
			assert.Equal(t, tt.empty, errors.Is(err, llm.ErrEmptyResponse))
		})
	}
}
