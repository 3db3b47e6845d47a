package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// EstimateDealerProfitQuery estimates what a dealer makes selling a recipe
type EstimateDealerProfitQuery struct {
	Dealer   string
	Product  string
	Mixers   []string
	Quantity int     // Units sold (default 1)
	Price    float64 // Base price per unit (0 = recipe market value)
}

// EstimateDealerProfitResponse carries the estimate
type EstimateDealerProfitResponse struct {
	Estimate dealer.ProfitEstimate
}

// EstimateDealerProfitHandler handles dealer profit estimates
type EstimateDealerProfitHandler struct {
	directory dealer.Directory
	engine    *valuation.Engine
}

// NewEstimateDealerProfitHandler creates a new handler
func NewEstimateDealerProfitHandler(directory dealer.Directory, engine *valuation.Engine) *EstimateDealerProfitHandler {
	return &EstimateDealerProfitHandler{
		directory: directory,
		engine:    engine,
	}
}

// Handle executes the query
func (h *EstimateDealerProfitHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*EstimateDealerProfitQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	dealers, err := h.directory.ListDealers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dealers: %w", err)
	}
	d, err := dealer.FindByName(dealers, query.Dealer)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	quantity := query.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	price := query.Price
	if price <= 0 {
		recipe, err := h.engine.Evaluate(query.Product, query.Mixers)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate recipe: %w", err)
		}
		price = float64(recipe.MarketValue())
	}

	return &EstimateDealerProfitResponse{
		Estimate: dealer.EstimateProfit(d, query.Product, quantity, price),
	}, nil
}
