package cookbook_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
)

func TestNewSavedRecipe(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	mixers := []string{"Cuke", "Banana"}

	// Act
	recipe, err := cookbook.NewSavedRecipe("  Kush Cuke  ", "OG Kush", mixers, "weekday batch", clock)
	mixers[0] = "Addy"

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, recipe.ID())
	assert.Equal(t, "Kush Cuke", recipe.Name())
	assert.Equal(t, []string{"Cuke", "Banana"}, recipe.Mixers())
	assert.Equal(t, clock.CurrentTime, recipe.CreatedAt())
}

func TestNewSavedRecipe_Validation(t *testing.T) {
	var validation *shared.ValidationError

	_, err := cookbook.NewSavedRecipe("", "OG Kush", nil, "", nil)
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "name", validation.Field)

	_, err = cookbook.NewSavedRecipe("x", " ", nil, "", nil)
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "product", validation.Field)
}
