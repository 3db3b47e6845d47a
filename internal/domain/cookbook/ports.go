package cookbook

import "context"

// Repository persists saved recipes
type Repository interface {
	Save(ctx context.Context, recipe *SavedRecipe) error
	FindByID(ctx context.Context, id string) (*SavedRecipe, error)
	List(ctx context.Context) ([]*SavedRecipe, error)
	Delete(ctx context.Context, id string) error
}
