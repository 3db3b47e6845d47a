package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/adapters/cache"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
	"github.com/kibahcorps/schedule1-go/test/helpers"
)

func TestRecipeCache_SetGet(t *testing.T) {
	// Arrange
	c := cache.NewRecipeCache(time.Minute, 0)
	recipe, err := helpers.NewDefaultEngine().Evaluate("OG Kush", []string{"Battery"})
	require.NoError(t, err)
	recipes := []*valuation.Recipe{recipe}

	// Act
	c.Set("OG Kush|1|1", recipes)
	got, ok := c.Get("OG Kush|1|1")

	// Assert
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "OG Kush", got[0].Product())
	assert.Equal(t, 1, c.Len())
}

func TestRecipeCache_ReturnedSliceIsACopy(t *testing.T) {
	c := cache.NewRecipeCache(time.Minute, 0)
	engine := helpers.NewDefaultEngine()
	a, _ := engine.Evaluate("OG Kush", nil)
	b, _ := engine.Evaluate("Cocaine", nil)
	c.Set("k", []*valuation.Recipe{a, b})

	got, _ := c.Get("k")
	got[0] = nil

	again, _ := c.Get("k")
	assert.NotNil(t, again[0])
}

func TestRecipeCache_Miss(t *testing.T) {
	c := cache.NewRecipeCache(0, 0)

	_, ok := c.Get("missing")

	assert.False(t, ok)
}

func TestRecipeCache_Expiry(t *testing.T) {
	c := cache.NewRecipeCache(10*time.Millisecond, 0)
	c.Set("k", nil)

	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}
