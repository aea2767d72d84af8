package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Persona represents a named investor-behavior profile used to tailor
// advisory chat tone.
type Persona struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	Icon          string    `db:"icon" json:"icon"`
	ColorGradient string    `db:"color_gradient" json:"color_gradient"`
	Traits        TraitList `db:"traits" json:"traits"`
}

// UserPersona records a user's persona selection.
type UserPersona struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	PersonaID  string    `db:"persona_id" json:"persona_id"`
	SelectedAt time.Time `db:"selected_at" json:"selected_at"`
}

// TraitList is a list of persona traits, stored as JSONB in postgres.
type TraitList []string

// Value implements driver.Valuer for JSONB storage.
func (t TraitList) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB storage.
func (t *TraitList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	case nil:
		*t = nil
		return nil
	default:
		return fmt.Errorf("TraitList.Scan: unsupported source type %T", src)
	}
}
