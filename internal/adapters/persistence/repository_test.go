package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/adapters/persistence"
	"github.com/kibahcorps/schedule1-go/internal/domain/cookbook"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
	"github.com/kibahcorps/schedule1-go/test/helpers"
)

func TestSavedRecipeRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSavedRecipeRepository(db)
	clock := shared.NewMockClock(helpers.FixedTime())
	recipe, err := cookbook.NewSavedRecipe("Blaster", "OG Kush", []string{"Cuke", "Battery"}, "weekend batch", clock)
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Save(context.Background(), recipe))
	found, err := repo.FindByID(context.Background(), recipe.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, recipe.Name(), found.Name())
	assert.Equal(t, recipe.Product(), found.Product())
	assert.Equal(t, []string{"Cuke", "Battery"}, found.Mixers())
	assert.Equal(t, "weekend batch", found.Notes())
	assert.True(t, helpers.FixedTime().Equal(found.CreatedAt()))
}

func TestSavedRecipeRepository_ListNewestFirstAndDelete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSavedRecipeRepository(db)
	clock := shared.NewMockClock(helpers.FixedTime())
	older, err := cookbook.NewSavedRecipe("older", "OG Kush", nil, "", clock)
	require.NoError(t, err)
	clock.Advance(time.Hour)
	newer, err := cookbook.NewSavedRecipe("newer", "Cocaine", []string{"Banana"}, "", clock)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), older))
	require.NoError(t, repo.Save(context.Background(), newer))

	// Act
	listed, err := repo.List(context.Background())
	require.NoError(t, err)
	deleteErr := repo.Delete(context.Background(), older.ID())
	missingErr := repo.Delete(context.Background(), older.ID())
	_, findErr := repo.FindByID(context.Background(), older.ID())

	// Assert
	require.Len(t, listed, 2)
	assert.Equal(t, "newer", listed[0].Name())
	assert.Empty(t, listed[1].Mixers())
	assert.NoError(t, deleteErr)
	var notFound *cookbook.ErrRecipeNotFound
	assert.True(t, errors.As(missingErr, &notFound))
	assert.True(t, errors.As(findErr, &notFound))
}

func TestDealerTransactionRepository(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormDealerTransactionRepository(db)
	day := helpers.FixedTime()
	later, err := dealer.NewTransaction("Benji Coleman", "OG Kush", 5, 40, day.Add(48*time.Hour))
	require.NoError(t, err)
	earlier, err := dealer.NewTransaction("Benji Coleman", "Cocaine", 2, 150, day)
	require.NoError(t, err)
	other, err := dealer.NewTransaction("Molly Presley", "OG Kush", 1, 45, day)
	require.NoError(t, err)

	// Act
	for _, tx := range []*dealer.Transaction{later, earlier, other} {
		require.NoError(t, repo.Save(context.Background(), tx))
	}
	listed, err := repo.ListByDealer(context.Background(), "Benji Coleman")

	// Assert
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, earlier.ID(), listed[0].ID())
	assert.Equal(t, "Cocaine", listed[0].Product())
	assert.Equal(t, 300.0, listed[0].Total())
	assert.Equal(t, later.ID(), listed[1].ID())
}
