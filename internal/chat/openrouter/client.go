package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finverse/internal/config"
	"finverse/internal/domain"
)

const apiURL = "https://openrouter.ai/api/v1/chat/completions"

// Client implements port.ChatCompleter against the OpenRouter
// chat-completions API.
type Client struct {
	apiKey      string
	model       string
	endpoint    string
	referer     string
	title       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewClient creates an OpenRouter client from chat config.
func NewClient(cfg *config.ChatConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return newClient(cfg, endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint
// (for testing).
func NewClientWithEndpoint(cfg *config.ChatConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.ChatConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "deepseek/deepseek-r1:free"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}
	return &Client{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    endpoint,
		referer:     cfg.Referer,
		title:       cfg.Title,
		temperature: temperature,
		maxTokens:   maxTokens,
		client:      &http.Client{Timeout: timeout},
	}
}

func systemPrompt(persona string) string {
	return fmt.Sprintf(`You are a financial advisor AI assistant specialized in helping %s investors.
Your responses should be tailored to the %s investment style and preferences.
Provide clear, concise, and actionable financial advice while maintaining a professional yet approachable tone.
Focus on giving practical investment advice that aligns with the %s's risk tolerance and investment goals.`,
		persona, persona, persona)
}

// Complete forwards one user message and returns the assistant's reply.
func (c *Client) Complete(ctx context.Context, persona, message string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrChatNotConfigured
	}

	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt(persona)},
			{"role": "user", "content": message},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
		"stream":      false,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", c.title)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrChatUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: openrouter API error (status %d): %s",
			domain.ErrChatUpstream, resp.StatusCode, upstreamErrorMessage(respBody))
	}

	return parseResponse(respBody)
}

// apiResponse models the OpenRouter chat-completions response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: unmarshaling response: %v", domain.ErrChatUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from API", domain.ErrChatUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}

func upstreamErrorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return "Unknown error"
}
