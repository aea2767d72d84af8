package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finverse/internal/service"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Advise(ctx context.Context, input service.ChatInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
