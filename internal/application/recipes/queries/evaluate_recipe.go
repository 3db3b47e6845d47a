package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// EvaluateRecipeQuery prices one product and mixer sequence
type EvaluateRecipeQuery struct {
	Product string
	Mixers  []string
}

// EvaluateRecipeResponse carries the evaluated recipe
type EvaluateRecipeResponse struct {
	Recipe        *types.RecipeDTO
	IgnoredMixers []types.IgnoredMixerDTO
}

// EvaluateRecipeHandler handles recipe evaluation queries
type EvaluateRecipeHandler struct {
	engine *valuation.Engine
}

// NewEvaluateRecipeHandler creates a new handler
func NewEvaluateRecipeHandler(engine *valuation.Engine) *EvaluateRecipeHandler {
	return &EvaluateRecipeHandler{engine: engine}
}

// Handle executes the query
func (h *EvaluateRecipeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*EvaluateRecipeQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	recipe, err := h.engine.Evaluate(query.Product, query.Mixers)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate recipe: %w", err)
	}

	ignored := types.ToIgnoredMixerDTOs(h.engine.Catalog(), query.Mixers)
	if len(ignored) > 0 {
		common.LoggerFromContext(ctx).Log("WARNING", "unknown mixers ignored", map[string]interface{}{
			"product": query.Product,
			"ignored": len(ignored),
		})
	}

	return &EvaluateRecipeResponse{
		Recipe:        types.ToRecipeDTO(recipe),
		IgnoredMixers: ignored,
	}, nil
}
