package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finverse/internal/domain"
)

func TestPersonaRepo_GetAll_Seeded(t *testing.T) {
	repo := NewPersonaRepo()

	personas, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, personas, 5)
	ids := make([]string, len(personas))
	for i, p := range personas {
		ids[i] = p.ID
	}
	assert.ElementsMatch(t, []string{"innovator", "traditionalist", "adventurer", "athlete", "artist"}, ids)
}

func TestPersonaRepo_GetByID(t *testing.T) {
	repo := NewPersonaRepo()

	p, err := repo.GetByID(context.Background(), "athlete")
	require.NoError(t, err)
	assert.Equal(t, "Athlete", p.Name)
	assert.NotEmpty(t, p.Traits)
}

func TestPersonaRepo_GetByID_NotFound(t *testing.T) {
	repo := NewPersonaRepo()

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPersonaNotFound)
}

func TestPersonaRepo_SaveSelection(t *testing.T) {
	repo := NewPersonaRepo()

	sel, err := repo.SaveSelection(context.Background(), "user-42", "artist")
	require.NoError(t, err)
	assert.Equal(t, "user-42", sel.UserID)
	assert.Equal(t, "artist", sel.PersonaID)
	assert.False(t, sel.SelectedAt.IsZero())
}

func TestPersonaRepo_SaveSelection_Idempotent(t *testing.T) {
	repo := NewPersonaRepo()
	ctx := context.Background()

	first, err := repo.SaveSelection(ctx, "user-42", "artist")
	require.NoError(t, err)

	second, err := repo.SaveSelection(ctx, "user-42", "artist")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.SelectedAt, second.SelectedAt)
}
