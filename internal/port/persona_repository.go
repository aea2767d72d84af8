package port

import (
	"context"

	"finverse/internal/domain"
)

// PersonaRepository defines the contract for persona persistence. The default
// implementation is an in-memory store; a postgres-backed one can be swapped
// in without touching the handlers.
type PersonaRepository interface {
	GetAll(ctx context.Context) ([]domain.Persona, error)
	GetByID(ctx context.Context, id string) (*domain.Persona, error)
	SaveSelection(ctx context.Context, userID, personaID string) (*domain.UserPersona, error)
}
