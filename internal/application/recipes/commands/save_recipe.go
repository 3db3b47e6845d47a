package commands

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// SaveRecipeCommand stores a named recipe
type SaveRecipeCommand struct {
	Name    string
	Product string
	Mixers  []string
	Notes   string
}

// SaveRecipeResponse returns the stored recipe with its current evaluation
type SaveRecipeResponse struct {
	Recipe *types.SavedRecipeDTO
}

// SaveRecipeHandler handles the SaveRecipe command
type SaveRecipeHandler struct {
	repo   cookbook.Repository
	engine *valuation.Engine
	clock  shared.Clock
}

// NewSaveRecipeHandler creates a new SaveRecipeHandler
func NewSaveRecipeHandler(repo cookbook.Repository, engine *valuation.Engine, clock shared.Clock) *SaveRecipeHandler {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &SaveRecipeHandler{
		repo:   repo,
		engine: engine,
		clock:  clock,
	}
}

// Handle executes the SaveRecipe command
func (h *SaveRecipeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveRecipeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveRecipeCommand")
	}

	c := h.engine.Catalog()
	if !c.HasProduct(cmd.Product) {
		return nil, c.NewUnknownProductError(cmd.Product)
	}

	recipe, err := cookbook.NewSavedRecipe(cmd.Name, cmd.Product, cmd.Mixers, cmd.Notes, h.clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create saved recipe: %w", err)
	}

	if err := h.repo.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to persist saved recipe: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "recipe saved", map[string]interface{}{
		"id":      recipe.ID(),
		"name":    recipe.Name(),
		"product": recipe.Product(),
	})

	return &SaveRecipeResponse{Recipe: types.ToSavedRecipeDTO(h.engine, recipe)}, nil
}
