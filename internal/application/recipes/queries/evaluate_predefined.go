package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// EvaluatePredefinedQuery prices the catalog's named example recipes
type EvaluatePredefinedQuery struct{}

// PredefinedDTO is one named recipe on one base product
type PredefinedDTO struct {
	Name            string           `json:"name"`
	Recipe          *types.RecipeDTO `json:"recipe"`
	ListedEffects   []string         `json:"listed_effects"`
	ListedProfit    float64          `json:"listed_profit"`
	MultiplierTotal float64          `json:"multiplier_total"`
	EffectsMatch    bool             `json:"effects_match"`
}

// EvaluatePredefinedResponse lists evaluations best margin first
type EvaluatePredefinedResponse struct {
	Recipes []PredefinedDTO
}

// EvaluatePredefinedHandler handles predefined recipe queries
type EvaluatePredefinedHandler struct {
	engine *valuation.Engine
}

// NewEvaluatePredefinedHandler creates a new handler
func NewEvaluatePredefinedHandler(engine *valuation.Engine) *EvaluatePredefinedHandler {
	return &EvaluatePredefinedHandler{engine: engine}
}

// Handle executes the query
func (h *EvaluatePredefinedHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*EvaluatePredefinedQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	evaluations, err := h.engine.EvaluatePredefined()
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate predefined recipes: %w", err)
	}

	response := &EvaluatePredefinedResponse{Recipes: make([]PredefinedDTO, len(evaluations))}
	for i, ev := range evaluations {
		response.Recipes[i] = PredefinedDTO{
			Name:            ev.Name,
			Recipe:          types.ToRecipeDTO(ev.Recipe),
			ListedEffects:   ev.ListedEffects,
			ListedProfit:    ev.ListedProfit,
			MultiplierTotal: ev.MultiplierTotal,
			EffectsMatch:    ev.EffectsMatch,
		}
	}
	return response, nil
}
