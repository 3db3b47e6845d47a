package types

import (
	"time"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// RecipeDTO represents an evaluated recipe for adapters
type RecipeDTO struct {
	Product       string   `json:"product"`
	Mixers        []string `json:"mixers"`
	Effects       []string `json:"effects"`
	MarketValue   int      `json:"market_value"`
	TotalCost     int      `json:"total_cost"`
	Profit        int      `json:"profit"`
	ProfitMargin  float64  `json:"profit_margin"`
	Addictiveness float64  `json:"addictiveness"`
}

// IgnoredMixerDTO is a mixer name the catalog did not recognize
type IgnoredMixerDTO struct {
	Name        string   `json:"name"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// SavedRecipeDTO is a stored recipe re-evaluated against the current catalog
type SavedRecipeDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	Recipe    *RecipeDTO `json:"recipe,omitempty"`
	// Error is set when the stored product no longer exists in the catalog
	Error string `json:"error,omitempty"`
}

// ToRecipeDTO converts a domain recipe to a DTO
func ToRecipeDTO(r *valuation.Recipe) *RecipeDTO {
	if r == nil {
		return nil
	}
	return &RecipeDTO{
		Product:       r.Product(),
		Mixers:        r.Mixers(),
		Effects:       r.Effects(),
		MarketValue:   r.MarketValue(),
		TotalCost:     r.TotalCost(),
		Profit:        r.Profit(),
		ProfitMargin:  r.ProfitMargin(),
		Addictiveness: r.Addictiveness(),
	}
}

// ToRecipeDTOs converts a ranked recipe list, keeping order
func ToRecipeDTOs(recipes []*valuation.Recipe) []*RecipeDTO {
	dtos := make([]*RecipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = ToRecipeDTO(r)
	}
	return dtos
}

// ToIgnoredMixerDTOs reports unknown mixers with "did you mean" hints
func ToIgnoredMixerDTOs(c *catalog.Catalog, mixers []string) []IgnoredMixerDTO {
	unknown := c.UnknownMixers(mixers)
	if len(unknown) == 0 {
		return nil
	}
	out := make([]IgnoredMixerDTO, len(unknown))
	for i, name := range unknown {
		out[i] = IgnoredMixerDTO{Name: name, Suggestions: c.SuggestMixers(name)}
	}
	return out
}

// ToSavedRecipeDTO evaluates a saved recipe and converts it
func ToSavedRecipeDTO(engine *valuation.Engine, saved *cookbook.SavedRecipe) *SavedRecipeDTO {
	dto := &SavedRecipeDTO{
		ID:        saved.ID(),
		Name:      saved.Name(),
		Notes:     saved.Notes(),
		CreatedAt: saved.CreatedAt(),
	}
	recipe, err := engine.Evaluate(saved.Product(), saved.Mixers())
	if err != nil {
		dto.Error = err.Error()
		return dto
	}
	dto.Recipe = ToRecipeDTO(recipe)
	return dto
}
