package dealer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
)

func TestEstimateProfit(t *testing.T) {
	// Arrange
	benji := dealer.Dealer{Name: "Benji", PercentageTaken: 20}

	// Act
	estimate := dealer.EstimateProfit(benji, "OG Kush", 10, 50)

	// Assert
	assert.Equal(t, "Benji", estimate.DealerName)
	assert.InDelta(t, 60.0, estimate.DealerPrice, 1e-9)
	assert.InDelta(t, 500.0, estimate.TotalBaseValue, 1e-9)
	assert.InDelta(t, 600.0, estimate.TotalDealerValue, 1e-9)
	assert.InDelta(t, 100.0, estimate.DealerProfit, 1e-9)
}

func TestRankDealers(t *testing.T) {
	// Arrange
	dealers := []dealer.Dealer{
		{Name: "Benji", PercentageTaken: 20, PreferredEffects: []string{"Calming", "Energizing"}, MaxQuantity: 100},
		{Name: "Molly", PercentageTaken: 10, PreferredEffects: []string{"Sneaky"}, MaxQuantity: 1000},
		{Name: "Brad", PercentageTaken: 20},
	}

	// Act
	ranked := dealer.RankDealers(dealers, []string{"Calming", "Energizing"})

	// Assert
	require.Len(t, ranked, 3)
	assert.Equal(t, "Benji", ranked[0].DealerName)
	assert.Equal(t, 2, ranked[0].MatchingEffects)
	assert.InDelta(t, 100.0, ranked[0].EffectMatchPercentage, 1e-9)
	assert.InDelta(t, 60+24+2, ranked[0].Score, 1e-9)

	assert.Equal(t, "Molly", ranked[1].DealerName)
	assert.InDelta(t, 27+10, ranked[1].Score, 1e-9, "capacity term capped at 500")

	assert.Equal(t, "Brad", ranked[2].DealerName)
	assert.InDelta(t, 24.0, ranked[2].Score, 1e-9)
}

func TestFindByName(t *testing.T) {
	dealers := []dealer.Dealer{{Name: "Benji"}, {Name: "Molly"}}

	found, err := dealer.FindByName(dealers, "molly")
	require.NoError(t, err)
	assert.Equal(t, "Molly", found.Name)

	_, err = dealer.FindByName(dealers, "Jane")
	var notFound *dealer.ErrDealerNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestNewTransaction(t *testing.T) {
	date := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	tx, err := dealer.NewTransaction("Benji", "OG Kush", 20, 45, date)
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID())
	assert.InDelta(t, 900.0, tx.Total(), 1e-9)
	assert.Equal(t, "20 OG Kush units at $45 each (04/02/2025)", tx.Summary())

	_, err = dealer.NewTransaction("Benji", "OG Kush", 0, 45, date)
	var invalid *dealer.ErrInvalidTransaction
	assert.True(t, errors.As(err, &invalid))

	_, err = dealer.NewTransaction("Benji", "OG Kush", 1, -1, date)
	assert.True(t, errors.As(err, &invalid))
}
