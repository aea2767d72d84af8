package service

import (
	"context"

	"finverse/internal/domain"
	"finverse/internal/port"
)

// SelectPersonaInput is the DTO for recording a persona selection.
type SelectPersonaInput struct {
	UserID  string `json:"userId" binding:"required"`
	Persona string `json:"persona" binding:"required"`
}

// PersonaService defines the persona management contract.
type PersonaService interface {
	List(ctx context.Context) ([]domain.Persona, error)
	GetByID(ctx context.Context, id string) (*domain.Persona, error)
	Select(ctx context.Context, input SelectPersonaInput) (*domain.UserPersona, error)
}

type personaService struct {
	repo port.PersonaRepository
}

// NewPersonaService creates a new PersonaService implementation.
func NewPersonaService(repo port.PersonaRepository) PersonaService {
	return &personaService{repo: repo}
}

func (s *personaService) List(ctx context.Context) ([]domain.Persona, error) {
	return s.repo.GetAll(ctx)
}

func (s *personaService) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *personaService) Select(ctx context.Context, input SelectPersonaInput) (*domain.UserPersona, error) {
	if _, err := s.repo.GetByID(ctx, input.Persona); err != nil {
		return nil, err
	}
	return s.repo.SaveSelection(ctx, input.UserID, input.Persona)
}
