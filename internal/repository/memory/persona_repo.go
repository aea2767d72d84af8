package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"finverse/internal/domain"
	"finverse/internal/port"
)

// personaRepo is a volatile in-memory persona store. It is seeded with the
// standard personas and resets on restart.
type personaRepo struct {
	mu         sync.RWMutex
	personas   []domain.Persona
	selections []domain.UserPersona
}

// NewPersonaRepo creates the in-memory PersonaRepository seeded with the
// default personas.
func NewPersonaRepo() port.PersonaRepository {
	return &personaRepo{personas: seedPersonas()}
}

func (r *personaRepo) GetAll(ctx context.Context) ([]domain.Persona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Persona, len(r.personas))
	copy(out, r.personas)
	return out, nil
}

func (r *personaRepo) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.personas {
		if r.personas[i].ID == id {
			p := r.personas[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPersonaNotFound
}

// SaveSelection is idempotent per (userID, personaID): repeating a selection
// returns the existing record.
func (r *personaRepo) SaveSelection(ctx context.Context, userID, personaID string) (*domain.UserPersona, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.selections {
		if r.selections[i].UserID == userID && r.selections[i].PersonaID == personaID {
			sel := r.selections[i]
			return &sel, nil
		}
	}
	sel := domain.UserPersona{
		ID:         uuid.New(),
		UserID:     userID,
		PersonaID:  personaID,
		SelectedAt: time.Now().UTC(),
	}
	r.selections = append(r.selections, sel)
	return &sel, nil
}

func seedPersonas() []domain.Persona {
	return []domain.Persona{
		{
			ID:            "innovator",
			Name:          "Innovator",
			Description:   "Always looking for the next big thing in tech and finance. You're drawn to emerging markets, disruptive technologies, and cutting-edge investment opportunities.",
			Icon:          "🚀",
			ColorGradient: "from-blue-500 to-cyan-500",
			Traits:        domain.TraitList{"Forward-thinking", "Tech-savvy", "Early adopter"},
		},
		{
			ID:            "traditionalist",
			Name:          "Traditionalist",
			Description:   "Prefer proven strategies and stable, long-term investments. You value consistency, reliability, and the wisdom of time-tested financial approaches.",
			Icon:          "🏛️",
			ColorGradient: "from-green-500 to-emerald-500",
			Traits:        domain.TraitList{"Disciplined", "Patient", "Value-focused"},
		},
		{
			ID:            "adventurer",
			Name:          "Adventurer",
			Description:   "Thrive on risk and excitement in the market. You're willing to explore unconventional opportunities and aren't afraid to take calculated risks for potentially higher returns.",
			Icon:          "🏃",
			ColorGradient: "from-orange-500 to-red-500",
			Traits:        domain.TraitList{"Risk-tolerant", "Adaptable", "Opportunity-seeker"},
		},
		{
			ID:            "athlete",
			Name:          "Athlete",
			Description:   "Disciplined, goal-oriented, and performance-driven. You approach investing like training—with dedication, measurable targets, and a competitive edge.",
			Icon:          "🏆",
			ColorGradient: "from-purple-500 to-indigo-500",
			Traits:        domain.TraitList{"Goal-oriented", "Competitive", "Consistent"},
		},
		{
			ID:            "artist",
			Name:          "Artist",
			Description:   "Creative approach to investing with unique perspectives. You see patterns others miss and aren't afraid to build a portfolio that reflects your individual vision.",
			Icon:          "🎨",
			ColorGradient: "from-pink-500 to-rose-500",
			Traits:        domain.TraitList{"Creative", "Intuitive", "Unique perspective"},
		},
	}
}
