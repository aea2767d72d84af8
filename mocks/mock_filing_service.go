package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finverse/internal/domain"
	"finverse/internal/filing"
)

// MockFilingService is a mock implementation of service.FilingService.
type MockFilingService struct {
	mock.Mock
}

func (m *MockFilingService) Parse(ctx context.Context, raw filing.RawRequest) (*domain.ParsedFiling, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedFiling), args.Error(1)
}

func (m *MockFilingService) ArchiveURL(ctx context.Context, raw filing.RawRequest) (string, error) {
	args := m.Called(ctx, raw)
	return args.String(0), args.Error(1)
}

func (m *MockFilingService) DeleteArchive(ctx context.Context, raw filing.RawRequest) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}
