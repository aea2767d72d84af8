package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finverse/internal/domain"
)

// MockFilingParser is a mock implementation of port.FilingParser.
type MockFilingParser struct {
	mock.Mock
}

func (m *MockFilingParser) Parse(ctx context.Context, req domain.FilingRequest) (*domain.ParsedFiling, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedFiling), args.Error(1)
}
