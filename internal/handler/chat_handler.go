package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"finverse/internal/domain"
	"finverse/internal/service"
)

// ChatHandler handles the advisory chat endpoint. Its wire contract differs
// from the rest of the API: the frontend chat widget expects a bare
// {response} object on success and {error} on failure.
type ChatHandler struct {
	chatService service.ChatService
	dev         bool
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService, dev bool) *ChatHandler {
	return &ChatHandler{chatService: chatService, dev: dev}
}

// Chat handles POST /api/chat
// @Summary Advisory chat
// @Description Forward one user message to the language model with a persona-tailored system prompt
// @Tags chat
// @Accept json
// @Produce json
// @Param request body service.ChatInput true "Chat turn"
// @Success 200 {object} map[string]string "Assistant reply"
// @Failure 400 {object} map[string]string "Missing message"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var input service.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		status, msg := MapError(domain.ErrMissingChatFields)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	reply, err := h.chatService.Advise(c.Request.Context(), input)
	if err != nil {
		status, msg := MapError(err)
		if status >= http.StatusInternalServerError {
			requestID, _ := c.Get("request_id")
			log.Printf("[%v] chat request failed: %v", requestID, err)
		}
		if h.dev {
			msg = err.Error()
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
