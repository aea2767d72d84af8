package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockChatCompleter is a mock implementation of port.ChatCompleter.
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, persona, message string) (string, error) {
	args := m.Called(ctx, persona, message)
	return args.String(0), args.Error(1)
}
