package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finverse/internal/domain"
)

// MockPersonaRepo is a mock implementation of port.PersonaRepository.
type MockPersonaRepo struct {
	mock.Mock
}

func (m *MockPersonaRepo) GetAll(ctx context.Context) ([]domain.Persona, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Persona), args.Error(1)
}

func (m *MockPersonaRepo) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepo) SaveSelection(ctx context.Context, userID, personaID string) (*domain.UserPersona, error) {
	args := m.Called(ctx, userID, personaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPersona), args.Error(1)
}
