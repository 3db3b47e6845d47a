package helpers

import (
	"sync"

	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// MockRecipeCache is an in-memory RecipeCache that counts lookups
type MockRecipeCache struct {
	mu      sync.Mutex
	entries map[string][]*valuation.Recipe
	Hits    int
	Misses  int
}

// NewMockRecipeCache creates an empty cache
func NewMockRecipeCache() *MockRecipeCache {
	return &MockRecipeCache{entries: make(map[string][]*valuation.Recipe)}
}

// Get returns a cached result
func (c *MockRecipeCache) Get(key string) ([]*valuation.Recipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	recipes, ok := c.entries[key]
	if ok {
		c.Hits++
	} else {
		c.Misses++
	}
	return recipes, ok
}

// Set stores a result
func (c *MockRecipeCache) Set(key string, recipes []*valuation.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = recipes
}

// Len returns the number of cached keys
func (c *MockRecipeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
