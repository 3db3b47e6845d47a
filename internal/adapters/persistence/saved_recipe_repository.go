package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
)

// GormSavedRecipeRepository implements cookbook.Repository using GORM
type GormSavedRecipeRepository struct {
	db *gorm.DB
}

// NewGormSavedRecipeRepository creates a new GORM saved recipe repository
func NewGormSavedRecipeRepository(db *gorm.DB) *GormSavedRecipeRepository {
	return &GormSavedRecipeRepository{db: db}
}

// Save inserts or replaces a saved recipe
func (r *GormSavedRecipeRepository) Save(ctx context.Context, recipe *cookbook.SavedRecipe) error {
	model, err := savedRecipeToModel(recipe)
	if err != nil {
		return fmt.Errorf("failed to convert saved recipe to model: %w", err)
	}

	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save recipe: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a saved recipe by its ID
func (r *GormSavedRecipeRepository) FindByID(ctx context.Context, id string) (*cookbook.SavedRecipe, error) {
	var model SavedRecipeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &cookbook.ErrRecipeNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find recipe: %w", result.Error)
	}

	return modelToSavedRecipe(&model)
}

// List retrieves all saved recipes, newest first
func (r *GormSavedRecipeRepository) List(ctx context.Context) ([]*cookbook.SavedRecipe, error) {
	var models []SavedRecipeModel
	if result := r.db.WithContext(ctx).Order("created_at DESC").Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", result.Error)
	}

	recipes := make([]*cookbook.SavedRecipe, len(models))
	for i := range models {
		recipe, err := modelToSavedRecipe(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert saved recipe model: %w", err)
		}
		recipes[i] = recipe
	}
	return recipes, nil
}

// Delete removes a saved recipe
func (r *GormSavedRecipeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SavedRecipeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &cookbook.ErrRecipeNotFound{ID: id}
	}
	return nil
}

func savedRecipeToModel(recipe *cookbook.SavedRecipe) (*SavedRecipeModel, error) {
	mixers, err := json.Marshal(recipe.Mixers())
	if err != nil {
		return nil, err
	}
	return &SavedRecipeModel{
		ID:        recipe.ID(),
		Name:      recipe.Name(),
		Product:   recipe.Product(),
		Mixers:    string(mixers),
		Notes:     recipe.Notes(),
		CreatedAt: recipe.CreatedAt(),
	}, nil
}

func modelToSavedRecipe(model *SavedRecipeModel) (*cookbook.SavedRecipe, error) {
	var mixers []string
	if model.Mixers != "" {
		if err := json.Unmarshal([]byte(model.Mixers), &mixers); err != nil {
			return nil, fmt.Errorf("invalid mixers for recipe %s: %w", model.ID, err)
		}
	}
	return cookbook.ReconstructSavedRecipe(
		model.ID,
		model.Name,
		model.Product,
		mixers,
		model.Notes,
		model.CreatedAt,
	), nil
}
