package helpers

import (
	"context"
	"sort"
	"sync"

	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
)

// MockSavedRecipeRepository is an in-memory implementation of cookbook.Repository for testing
type MockSavedRecipeRepository struct {
	mu      sync.Mutex
	Recipes map[string]*cookbook.SavedRecipe // key: id
	SaveErr error
}

// NewMockSavedRecipeRepository creates a new mock repository
func NewMockSavedRecipeRepository() *MockSavedRecipeRepository {
	return &MockSavedRecipeRepository{Recipes: make(map[string]*cookbook.SavedRecipe)}
}

// Save stores the recipe
func (m *MockSavedRecipeRepository) Save(ctx context.Context, recipe *cookbook.SavedRecipe) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Recipes[recipe.ID()] = recipe
	return nil
}

// FindByID returns the recipe or cookbook.ErrRecipeNotFound
func (m *MockSavedRecipeRepository) FindByID(ctx context.Context, id string) (*cookbook.SavedRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recipe, ok := m.Recipes[id]
	if !ok {
		return nil, &cookbook.ErrRecipeNotFound{ID: id}
	}
	return recipe, nil
}

// List returns recipes newest first
func (m *MockSavedRecipeRepository) List(ctx context.Context) ([]*cookbook.SavedRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*cookbook.SavedRecipe, 0, len(m.Recipes))
	for _, r := range m.Recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

// Delete removes the recipe or returns cookbook.ErrRecipeNotFound
func (m *MockSavedRecipeRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Recipes[id]; !ok {
		return &cookbook.ErrRecipeNotFound{ID: id}
	}
	delete(m.Recipes, id)
	return nil
}
