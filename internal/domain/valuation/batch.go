package valuation

// BatchProfit is the expected return of growing several batches of a recipe
type BatchProfit struct {
	RecipeName       string  `json:"recipe_name"`
	Batches          int     `json:"batches"`
	SeedCostPerBatch float64 `json:"seed_cost_per_batch"`
	TotalSeedCost    float64 `json:"total_seed_cost"`
	YieldPerBatch    int     `json:"yield_per_batch"`
	TotalYield       int     `json:"total_yield"`
	ValuePerUnit     float64 `json:"value_per_unit"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalProfit      float64 `json:"total_profit"`
	ROIPercentage    float64 `json:"roi_percentage"`
}

// CalculateBatchProfit multiplies seed cost and yield by the batch count and prices
// the total yield at unitValue. Fewer than one batch counts as one; ROI is 0 when
// nothing was spent on seeds.
func CalculateBatchProfit(recipeName string, seedCost float64, yieldAmount int, unitValue float64, quantity int) BatchProfit {
	if quantity < 1 {
		quantity = 1
	}

	totalSeedCost := seedCost * float64(quantity)
	totalYield := yieldAmount * quantity
	totalRevenue := unitValue * float64(totalYield)
	totalProfit := totalRevenue - totalSeedCost

	roi := 0.0
	if totalSeedCost > 0 {
		roi = totalProfit / totalSeedCost * 100
	}

	return BatchProfit{
		RecipeName:       recipeName,
		Batches:          quantity,
		SeedCostPerBatch: seedCost,
		TotalSeedCost:    totalSeedCost,
		YieldPerBatch:    yieldAmount,
		TotalYield:       totalYield,
		ValuePerUnit:     unitValue,
		TotalRevenue:     totalRevenue,
		TotalProfit:      totalProfit,
		ROIPercentage:    roi,
	}
}
