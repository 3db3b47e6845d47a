package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/services"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
)

// TopRecipesQuery requests the most profitable recipes for one product
type TopRecipesQuery struct {
	Product   string
	TopN      int // Number of recipes (0 = configured default)
	MaxMixers int // Longest sequence considered (0 = configured default)
}

// TopRecipesResponse contains the ranked recipes
type TopRecipesResponse struct {
	Product   string
	TopN      int
	MaxMixers int
	Recipes   []*types.RecipeDTO
	Cached    bool
}

// TopRecipesHandler handles top recipe queries
type TopRecipesHandler struct {
	finder   *services.RecipeFinder
	defaults SearchDefaults
}

// NewTopRecipesHandler creates a new handler
func NewTopRecipesHandler(finder *services.RecipeFinder, defaults SearchDefaults) *TopRecipesHandler {
	return &TopRecipesHandler{
		finder:   finder,
		defaults: defaults,
	}
}

// Handle executes the query
func (h *TopRecipesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*TopRecipesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	// Apply defaults
	topN, maxMixers := h.defaults.apply(query.TopN, query.MaxMixers)

	recipes, cached, err := h.finder.TopRecipes(ctx, query.Product, topN, maxMixers)
	if err != nil {
		return nil, fmt.Errorf("failed to find top recipes: %w", err)
	}

	return &TopRecipesResponse{
		Product:   query.Product,
		TopN:      topN,
		MaxMixers: maxMixers,
		Recipes:   types.ToRecipeDTOs(recipes),
		Cached:    cached,
	}, nil
}
