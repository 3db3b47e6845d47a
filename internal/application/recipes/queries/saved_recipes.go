package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// ListSavedRecipesQuery lists every saved recipe, newest first
type ListSavedRecipesQuery struct{}

// ListSavedRecipesResponse contains the saved recipes evaluated against the current catalog
type ListSavedRecipesResponse struct {
	Recipes []*types.SavedRecipeDTO
}

// GetSavedRecipeQuery fetches one saved recipe
type GetSavedRecipeQuery struct {
	ID string
}

// GetSavedRecipeResponse contains the saved recipe
type GetSavedRecipeResponse struct {
	Recipe *types.SavedRecipeDTO
}

// SavedRecipesHandler handles saved recipe queries
type SavedRecipesHandler struct {
	repo   cookbook.Repository
	engine *valuation.Engine
}

// NewSavedRecipesHandler creates a new handler
func NewSavedRecipesHandler(repo cookbook.Repository, engine *valuation.Engine) *SavedRecipesHandler {
	return &SavedRecipesHandler{
		repo:   repo,
		engine: engine,
	}
}

// Handle executes the query
func (h *SavedRecipesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch query := request.(type) {
	case *ListSavedRecipesQuery:
		saved, err := h.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list saved recipes: %w", err)
		}
		response := &ListSavedRecipesResponse{Recipes: make([]*types.SavedRecipeDTO, len(saved))}
		for i, s := range saved {
			response.Recipes[i] = types.ToSavedRecipeDTO(h.engine, s)
		}
		return response, nil
	case *GetSavedRecipeQuery:
		saved, err := h.repo.FindByID(ctx, query.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get saved recipe: %w", err)
		}
		return &GetSavedRecipeResponse{Recipe: types.ToSavedRecipeDTO(h.engine, saved)}, nil
	default:
		return nil, fmt.Errorf("invalid request type")
	}
}
