package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name  string
	reply string
	err   error
	calls int
	last  []Turn
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(_ context.Context, _ string, history []Turn) (string, error) {
	f.calls++
	f.last = history
	return f.reply, f.err
}

type payload struct {
	Score int    `json:"score"`
	Note  string `json:"note"`
}

func TestChain_FirstProviderWins(t *testing.T) {
	first := &fakeProvider{name: "gemini", reply: `{"score": 80, "note": "ok"}`}
	second := &fakeProvider{name: "groq", reply: `{"score": 10}`}
	chain := NewChain(first, second)

	var out payload
	res, err := chain.GenerateJSON(context.Background(), Request{Prompt: "p"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "gemini", res.Provider)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 80, out.Score)
	assert.Equal(t, 0, second.calls)
}

func TestChain_FallsThroughOnErrorAndBadJSON(t *testing.T) {
	failing := &fakeProvider{name: "gemini", err: errors.New("quota exceeded")}
	garbage := &fakeProvider{name: "groq", reply: "I cannot help with that"}
	good := &fakeProvider{name: "backup", reply: "```json\n{\"score\": 55}\n```"}
	chain := NewChain(failing, garbage, good)

	var out payload
	res, err := chain.GenerateJSON(context.Background(), Request{Prompt: "p", Required: []string{"score", "note"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "backup", res.Provider)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 55, out.Score)
	assert.Equal(t, []string{"note"}, res.Missing)

	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, garbage.calls)
	assert.Equal(t, 1, good.calls)
}

func TestChain_AllFail(t *testing.T) {
	a := &fakeProvider{name: "gemini", err: errors.New("boom")}
	b := &fakeProvider{name: "groq", reply: "not json"}
	chain := NewChain(a, b)

	out := payload{Score: 7}
	res, err := chain.GenerateJSON(context.Background(), Request{Prompt: "p"}, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllProvidersFailed))
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 7, out.Score, "target must be untouched on failure")
}

func TestChain_PartialDecodeDoesNotLeak(t *testing.T) {
	// first reply decodes "note" before failing on "score"
	bad := &fakeProvider{name: "gemini", reply: `{"note": "leak", "score": "abc"}`}
	good := &fakeProvider{name: "groq", reply: `{"score": 3}`}
	chain := NewChain(bad, good)

	var out payload
	_, err := chain.GenerateJSON(context.Background(), Request{Prompt: "p"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Score)
	assert.Empty(t, out.Note)
}

func TestChain_NoProviders(t *testing.T) {
	var nilProvider *fakeProvider
	chain := NewChain(nil, nilProvider)
	assert.Equal(t, 0, chain.Len())

	var out payload
	_, err := chain.GenerateJSON(context.Background(), Request{Prompt: "p"}, &out)
	assert.ErrorIs(t, err, ErrNoProviders)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
}

func TestChain_CancelledContext(t *testing.T) {
	a := &fakeProvider{name: "gemini", reply: `{"score": 1}`}
	chain := NewChain(a)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out payload
	_, err := chain.GenerateJSON(ctx, Request{Prompt: "p"}, &out)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, a.calls)
}

func TestChain_GenerateText(t *testing.T) {
	empty := &fakeProvider{name: "gemini", reply: "   "}
	good := &fakeProvider{name: "groq", reply: " Hello there "}
	chain := NewChain(empty, good)

	history := []Turn{{Role: RoleUser, Text: "hi"}}
	text, res, err := chain.GenerateText(context.Background(), Request{Prompt: "p", History: history})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)
	assert.Equal(t, "groq", res.Provider)
	assert.Equal(t, history, good.last)
}

func TestChain_Names(t *testing.T) {
	chain := NewChain(&fakeProvider{name: "groq"}, &fakeProvider{name: "gemini"})
	assert.Equal(t, []string{"groq", "gemini"}, chain.Names())
}

func TestChain_RejectsNonPointer(t *testing.T) {
	chain := NewChain(&fakeProvider{name: "gemini", reply: "{}"})
	_, err := chain.GenerateJSON(context.Background(), Request{}, payload{})
	assert.Error(t, err)
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"inline fence", "```json{\"a\":1}```", `{"a":1}`},
		{"prose around", "Here you go: {\"a\":1} hope it helps", `{"a":1}`},
		{"no json", "sorry", "sorry"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.input))
		})
	}
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleModel, NormalizeRole("assistant"))
	assert.Equal(t, RoleModel, NormalizeRole("Model"))
	assert.Equal(t, RoleUser, NormalizeRole("user"))
	assert.Equal(t, RoleUser, NormalizeRole(""))
}
