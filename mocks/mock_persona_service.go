package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finverse/internal/domain"
	"finverse/internal/service"
)

// MockPersonaService is a mock implementation of service.PersonaService.
type MockPersonaService struct {
	mock.Mock
}

func (m *MockPersonaService) List(ctx context.Context) ([]domain.Persona, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Persona), args.Error(1)
}

func (m *MockPersonaService) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

func (m *MockPersonaService) Select(ctx context.Context, input service.SelectPersonaInput) (*domain.UserPersona, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPersona), args.Error(1)
}
