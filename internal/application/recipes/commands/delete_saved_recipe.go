package commands

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
)

// DeleteSavedRecipeCommand removes a saved recipe by id
type DeleteSavedRecipeCommand struct {
	ID string
}

// DeleteSavedRecipeResponse confirms the deletion
type DeleteSavedRecipeResponse struct {
	ID string
}

// DeleteSavedRecipeHandler handles the DeleteSavedRecipe command
type DeleteSavedRecipeHandler struct {
	repo cookbook.Repository
}

// NewDeleteSavedRecipeHandler creates a new DeleteSavedRecipeHandler
func NewDeleteSavedRecipeHandler(repo cookbook.Repository) *DeleteSavedRecipeHandler {
	return &DeleteSavedRecipeHandler{repo: repo}
}

// Handle executes the DeleteSavedRecipe command
func (h *DeleteSavedRecipeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteSavedRecipeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteSavedRecipeCommand")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return nil, fmt.Errorf("failed to delete saved recipe: %w", err)
	}
	return &DeleteSavedRecipeResponse{ID: cmd.ID}, nil
}
