package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func chatCompletion(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finishReason,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func openAIError(status int, errType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": errType, "message": errType},
		})
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var got openai.ChatCompletionRequest
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(twoHeadsJSON, "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a probability professor.",
		Prompt:    "Difficulty: Easy",
		Schema:    scenarioSchema("openai-scenario"),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 25}, resp.Usage)
	assert.Equal(t, StopEnd, resp.Stop)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
	assert.Equal(t, "Difficulty: Easy", got.Messages[1].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, got.ResponseFormat.Type)
}

func TestOpenAIProvider_SchemaViolation(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"scenario":"Dice"}`, "stop"))
	})

	_, err := p.Generate(context.Background(), Request{
		Prompt:    "Difficulty: Medium",
		Schema:    scenarioSchema("openai-scenario"),
		MaxTokens: 256,
	})

	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"scenario":"A`, "length"))
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "x", MaxTokens: 4})

	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
}

func TestOpenAIProvider_Errors(t *testing.T) {
	t.Run("rate limit", func(t *testing.T) {
		p := newTestOpenAIProvider(t, openAIError(http.StatusTooManyRequests, "tokens"))
		_, err := p.Generate(context.Background(), Request{Prompt: "test", MaxTokens: 100})

		var rl *ErrRateLimit
		require.ErrorAs(t, err, &rl)
	})

	t.Run("server error", func(t *testing.T) {
		p := newTestOpenAIProvider(t, openAIError(http.StatusInternalServerError, "server_error"))
		_, err := p.Generate(context.Background(), Request{Prompt: "test", MaxTokens: 100})

		var unavail *ErrProviderUnavailable
		require.ErrorAs(t, err, &unavail)
	})
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"})
	assert.Error(t, err)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o", BaseURL: "https://llm-proxy.example/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())
}

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"})
	assert.Error(t, err)

	for _, model := range []string{"google/gemini-2.5-flash", "anthropic/claude-3-haiku"} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
		require.NoError(t, err)
		assert.Equal(t, model, p.ModelID())
	}
}

func TestOpenRouterProvider_UsesBaseURL(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{}`, "stop"))
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: server.URL + "/api/v1",
	})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "x", MaxTokens: 8})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/chat/completions", path)
}
