package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// RecipeCache memoizes search results in process memory with a TTL
type RecipeCache struct {
	store *gocache.Cache
}

// NewRecipeCache creates a cache whose entries expire after ttl (0 = never)
// and are swept every cleanup interval (0 = never swept)
func NewRecipeCache(ttl, cleanup time.Duration) *RecipeCache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &RecipeCache{store: gocache.New(ttl, cleanup)}
}

// Get returns a copy of the cached recipes for key
func (c *RecipeCache) Get(key string) ([]*valuation.Recipe, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	recipes, ok := v.([]*valuation.Recipe)
	if !ok {
		return nil, false
	}
	return append([]*valuation.Recipe(nil), recipes...), true
}

// Set stores recipes under key with the default TTL
func (c *RecipeCache) Set(key string, recipes []*valuation.Recipe) {
	c.store.SetDefault(key, append([]*valuation.Recipe(nil), recipes...))
}

// Len reports the number of live entries
func (c *RecipeCache) Len() int {
	return c.store.ItemCount()
}
