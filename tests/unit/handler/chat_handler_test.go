package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finverse/internal/domain"
	"finverse/internal/handler"
	"finverse/internal/service"
	"finverse/mocks"
)

func decodeChat(t *testing.T, body []byte) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestChatHandler_Chat_Success(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc, true)

	svc.On("Advise", mock.Anything, service.ChatInput{
		Message: "Should I rebalance quarterly?",
		Persona: "traditionalist",
	}).Return("Annual rebalancing is usually enough for a long-term portfolio.", nil)

	w := postJSON(t, h.Chat, "/api/chat", `{"message":"Should I rebalance quarterly?","persona":"traditionalist"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	out := decodeChat(t, w.Body.Bytes())
	assert.Equal(t, "Annual rebalancing is usually enough for a long-term portfolio.", out["response"])
	svc.AssertExpectations(t)
}

func TestChatHandler_Chat_MissingMessage(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc, true)

	w := postJSON(t, h.Chat, "/api/chat", `{"persona":"innovator"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	out := decodeChat(t, w.Body.Bytes())
	assert.Equal(t, "Missing required field: message", out["error"])
	svc.AssertNotCalled(t, "Advise", mock.Anything, mock.Anything)
}

func TestChatHandler_Chat_NotConfigured(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc, false)

	svc.On("Advise", mock.Anything, mock.Anything).Return("", domain.ErrChatNotConfigured)

	w := postJSON(t, h.Chat, "/api/chat", `{"message":"Hello"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	out := decodeChat(t, w.Body.Bytes())
	assert.Equal(t, "OpenRouter API key not configured", out["error"])
}

func TestChatHandler_Chat_UpstreamFailure(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc, false)

	svc.On("Advise", mock.Anything, mock.Anything).Return("", domain.ErrChatUpstream)

	w := postJSON(t, h.Chat, "/api/chat", `{"message":"Hello"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	out := decodeChat(t, w.Body.Bytes())
	assert.Equal(t, "Failed to process chat request", out["error"])
}

func TestChatHandler_Chat_DevExposesDetail(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc, true)

	svc.On("Advise", mock.Anything, mock.Anything).Return("", domain.ErrChatUpstream)

	w := postJSON(t, h.Chat, "/api/chat", `{"message":"Hello"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	out := decodeChat(t, w.Body.Bytes())
	assert.Equal(t, domain.ErrChatUpstream.Error(), out["error"])
}
