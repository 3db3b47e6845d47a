package cookbook

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
)

// SavedRecipe is a named mixer sequence kept by the player.
// Only the inputs are stored; values are recomputed against the current catalog on read.
type SavedRecipe struct {
	id        string
	name      string
	product   string
	mixers    []string
	notes     string
	createdAt time.Time
}

// NewSavedRecipe validates the inputs and assigns a fresh id
func NewSavedRecipe(name, product string, mixers []string, notes string, clock shared.Clock) (*SavedRecipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(product) == "" {
		return nil, shared.NewValidationError("product", "must not be empty")
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return ReconstructSavedRecipe(uuid.NewString(), name, product, mixers, notes, clock.Now()), nil
}

// ReconstructSavedRecipe rebuilds a stored recipe without validation
func ReconstructSavedRecipe(id, name, product string, mixers []string, notes string, createdAt time.Time) *SavedRecipe {
	return &SavedRecipe{
		id:        id,
		name:      name,
		product:   product,
		mixers:    append([]string(nil), mixers...),
		notes:     notes,
		createdAt: createdAt,
	}
}

func (r *SavedRecipe) ID() string           { return r.id }
func (r *SavedRecipe) Name() string         { return r.name }
func (r *SavedRecipe) Product() string      { return r.product }
func (r *SavedRecipe) Mixers() []string     { return append([]string(nil), r.mixers...) }
func (r *SavedRecipe) Notes() string        { return r.notes }
func (r *SavedRecipe) CreatedAt() time.Time { return r.createdAt }
