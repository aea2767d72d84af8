package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finverse/internal/chat/openrouter"
	"finverse/internal/config"
	"finverse/internal/domain"
)

func testConfig() *config.ChatConfig {
	return &config.ChatConfig{
		APIKey:  "sk-or-test",
		Model:   "deepseek/deepseek-r1:free",
		Referer: "https://financial-multiverse.vercel.app",
		Title:   "Financial Multiverse",
	}
}

func TestClient_Complete_Success(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Stream      bool    `json:"stream"`
	}
	var authHeader, refererHeader, titleHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		refererHeader = r.Header.Get("HTTP-Referer")
		titleHeader = r.Header.Get("X-Title")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Diversify across sectors."}}]}`))
	}))
	defer server.Close()

	client := openrouter.NewClientWithEndpoint(testConfig(), server.URL)

	reply, err := client.Complete(context.Background(), "innovator", "Where should I invest?")

	require.NoError(t, err)
	assert.Equal(t, "Diversify across sectors.", reply)

	assert.Equal(t, "Bearer sk-or-test", authHeader)
	assert.Equal(t, "https://financial-multiverse.vercel.app", refererHeader)
	assert.Equal(t, "Financial Multiverse", titleHeader)

	assert.Equal(t, "deepseek/deepseek-r1:free", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "innovator investors")
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "Where should I invest?", captured.Messages[1].Content)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
	assert.Equal(t, 500, captured.MaxTokens)
	assert.False(t, captured.Stream)
}

func TestClient_Complete_NoAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""
	client := openrouter.NewClientWithEndpoint(cfg, "http://unused.invalid")

	_, err := client.Complete(context.Background(), "general", "Hello")

	assert.ErrorIs(t, err, domain.ErrChatNotConfigured)
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer server.Close()

	client := openrouter.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Complete(context.Background(), "general", "Hello")

	require.ErrorIs(t, err, domain.ErrChatUpstream)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := openrouter.NewClientWithEndpoint(testConfig(), server.URL)

	_, err := client.Complete(context.Background(), "general", "Hello")

	require.ErrorIs(t, err, domain.ErrChatUpstream)
	assert.Contains(t, err.Error(), "empty response")
}

func TestClient_Complete_UnreachableUpstream(t *testing.T) {
	client := openrouter.NewClientWithEndpoint(testConfig(), "http://127.0.0.1:1")

	_, err := client.Complete(context.Background(), "general", "Hello")

	assert.ErrorIs(t, err, domain.ErrChatUpstream)
}
