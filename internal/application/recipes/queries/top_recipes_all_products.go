package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/services"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/search"
)

// TopRecipesAllProductsQuery runs the recipe search for every catalog product
type TopRecipesAllProductsQuery struct {
	TopN      int
	MaxMixers int
	// Progress is called after each product finishes; returning an error aborts
	Progress search.ProgressFunc
}

// ProductRecipes holds one product's ranked recipes
type ProductRecipes struct {
	Product string             `json:"product"`
	Recipes []*types.RecipeDTO `json:"recipes"`
}

// TopRecipesAllProductsResponse lists results in catalog product order
type TopRecipesAllProductsResponse struct {
	Products []ProductRecipes
}

// TopRecipesAllProductsHandler handles whole-catalog search queries
type TopRecipesAllProductsHandler struct {
	finder   *services.RecipeFinder
	defaults SearchDefaults
}

// NewTopRecipesAllProductsHandler creates a new handler
func NewTopRecipesAllProductsHandler(finder *services.RecipeFinder, defaults SearchDefaults) *TopRecipesAllProductsHandler {
	return &TopRecipesAllProductsHandler{
		finder:   finder,
		defaults: defaults,
	}
}

// Handle executes the query
func (h *TopRecipesAllProductsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*TopRecipesAllProductsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	// Apply defaults
	topN, maxMixers := h.defaults.apply(query.TopN, query.MaxMixers)

	results, err := h.finder.TopRecipesAllProducts(ctx, topN, maxMixers, query.Progress)
	if err != nil {
		return nil, err
	}

	products := h.finder.Engine().Catalog().Products()
	response := &TopRecipesAllProductsResponse{Products: make([]ProductRecipes, 0, len(products))}
	for _, product := range products {
		response.Products = append(response.Products, ProductRecipes{
			Product: product,
			Recipes: types.ToRecipeDTOs(results[product]),
		})
	}
	return response, nil
}
