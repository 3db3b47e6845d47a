package queries

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/domain/shared"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// BatchProfitQuery estimates the return of producing several batches of a recipe
type BatchProfitQuery struct {
	Product    string
	Mixers     []string
	Batches    int    // Number of batches (default 1)
	RecipeName string // Label for the result (default "<product> + <mixers>")
}

// BatchProfitResponse carries the batch economics
type BatchProfitResponse struct {
	Batch valuation.BatchProfit
}

// BatchProfitHandler handles batch profit queries.
//
// Strains use their seed cost and rounded average yield; products with batch
// production info use the ingredients cost and yield. Each unit is valued at the
// recipe's market value. Flat products without production info have no batch.
type BatchProfitHandler struct {
	engine *valuation.Engine
}

// NewBatchProfitHandler creates a new handler
func NewBatchProfitHandler(engine *valuation.Engine) *BatchProfitHandler {
	return &BatchProfitHandler{engine: engine}
}

// Handle executes the query
func (h *BatchProfitHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*BatchProfitQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	recipe, err := h.engine.Evaluate(query.Product, query.Mixers)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate recipe: %w", err)
	}

	// Apply defaults
	batches := query.Batches
	if batches <= 0 {
		batches = 1
	}
	name := query.RecipeName
	if name == "" {
		name = query.Product
		if len(query.Mixers) > 0 {
			name += " + " + strings.Join(query.Mixers, ", ")
		}
	}

	c := h.engine.Catalog()
	var seedCost float64
	var yield int
	if strain, ok := c.Strain(query.Product); ok {
		seedCost = strain.SeedCost
		yield = int(math.Round(strain.AverageYield()))
	} else if info, ok := c.Production(query.Product); ok {
		seedCost = info.IngredientsCost
		yield = info.Yield
	} else {
		return nil, shared.NewValidationError("product", fmt.Sprintf("%s has no batch production data", query.Product))
	}

	return &BatchProfitResponse{
		Batch: valuation.CalculateBatchProfit(name, seedCost, yield, float64(recipe.MarketValue()), batches),
	}, nil
}
