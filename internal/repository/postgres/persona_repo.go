package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"finverse/internal/domain"
	"finverse/internal/port"
)

type personaRepo struct {
	db *sqlx.DB
}

// NewPersonaRepo creates a PostgreSQL-backed PersonaRepository.
func NewPersonaRepo(db *sqlx.DB) port.PersonaRepository {
	return &personaRepo{db: db}
}

func (r *personaRepo) GetAll(ctx context.Context) ([]domain.Persona, error) {
	var personas []domain.Persona
	err := r.db.SelectContext(ctx, &personas,
		"SELECT * FROM personas ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("personaRepo.GetAll: %w", err)
	}
	return personas, nil
}

func (r *personaRepo) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	var persona domain.Persona
	err := r.db.GetContext(ctx, &persona, "SELECT * FROM personas WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPersonaNotFound
		}
		return nil, fmt.Errorf("personaRepo.GetByID: %w", err)
	}
	return &persona, nil
}

func (r *personaRepo) SaveSelection(ctx context.Context, userID, personaID string) (*domain.UserPersona, error) {
	sel := domain.UserPersona{
		ID:         uuid.New(),
		UserID:     userID,
		PersonaID:  personaID,
		SelectedAt: time.Now().UTC(),
	}

	query := `INSERT INTO user_personas (id, user_id, persona_id, selected_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, persona_id) DO UPDATE SET selected_at = user_personas.selected_at
		RETURNING id, user_id, persona_id, selected_at`

	var saved domain.UserPersona
	err := r.db.GetContext(ctx, &saved, query, sel.ID, sel.UserID, sel.PersonaID, sel.SelectedAt)
	if err != nil {
		return nil, fmt.Errorf("personaRepo.SaveSelection: %w", err)
	}
	return &saved, nil
}
