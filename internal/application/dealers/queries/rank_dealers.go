package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// RankDealersQuery ranks dealers for a product. When Effects is empty they are
// resolved from Product and Mixers.
type RankDealersQuery struct {
	Product string
	Mixers  []string
	Effects []string
	Limit   int // Maximum dealers to return (0 = all)
}

// RankDealersResponse lists dealers best score first
type RankDealersResponse struct {
	Effects []string
	Matches []dealer.Match
}

// RankDealersHandler handles dealer ranking queries
type RankDealersHandler struct {
	directory dealer.Directory
	engine    *valuation.Engine
}

// NewRankDealersHandler creates a new handler
func NewRankDealersHandler(directory dealer.Directory, engine *valuation.Engine) *RankDealersHandler {
	return &RankDealersHandler{
		directory: directory,
		engine:    engine,
	}
}

// Handle executes the query
func (h *RankDealersHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*RankDealersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	effects := query.Effects
	if len(effects) == 0 {
		effects = h.engine.ResolveEffects(query.Product, query.Mixers)
	}

	dealers, err := h.directory.ListDealers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dealers: %w", err)
	}

	matches := dealer.RankDealers(dealers, effects)
	if query.Limit > 0 && len(matches) > query.Limit {
		matches = matches[:query.Limit]
	}

	return &RankDealersResponse{
		Effects: effects,
		Matches: matches,
	}, nil
}
