package service

import (
	"context"

	"finverse/internal/port"
)

// ChatInput is the DTO for one chat turn.
type ChatInput struct {
	Message string `json:"message" binding:"required"`
	Persona string `json:"persona"`
}

// ChatService defines the advisory chat contract.
type ChatService interface {
	Advise(ctx context.Context, input ChatInput) (string, error)
}

type chatService struct {
	completer port.ChatCompleter
}

// NewChatService creates a new ChatService implementation.
func NewChatService(completer port.ChatCompleter) ChatService {
	return &chatService{completer: completer}
}

func (s *chatService) Advise(ctx context.Context, input ChatInput) (string, error) {
	persona := input.Persona
	if persona == "" {
		persona = "general"
	}
	return s.completer.Complete(ctx, persona, input.Message)
}
