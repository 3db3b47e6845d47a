package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// MixInput is one named mix to compare
type MixInput struct {
	Name    string   `json:"name"`
	Product string   `json:"product"`
	Mixers  []string `json:"mixers"`
}

// CompareMixesQuery ranks several mixes against each other
type CompareMixesQuery struct {
	Mixes []MixInput
}

// ComparisonDTO is one ranked mix
type ComparisonDTO struct {
	Rank   int              `json:"rank"`
	Name   string           `json:"name"`
	Recipe *types.RecipeDTO `json:"recipe"`
}

// CompareMixesResponse lists mixes best margin first
type CompareMixesResponse struct {
	Comparisons []ComparisonDTO
}

// CompareMixesHandler handles mix comparison queries
type CompareMixesHandler struct {
	engine *valuation.Engine
}

// NewCompareMixesHandler creates a new handler
func NewCompareMixesHandler(engine *valuation.Engine) *CompareMixesHandler {
	return &CompareMixesHandler{engine: engine}
}

// Handle executes the query
func (h *CompareMixesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*CompareMixesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	mixes := make([]valuation.NamedMix, len(query.Mixes))
	for i, m := range query.Mixes {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("Mix %d", i+1)
		}
		mixes[i] = valuation.NamedMix{Name: name, Product: m.Product, Mixers: m.Mixers}
	}

	ranked, err := h.engine.CompareMixes(mixes)
	if err != nil {
		return nil, fmt.Errorf("failed to compare mixes: %w", err)
	}

	response := &CompareMixesResponse{Comparisons: make([]ComparisonDTO, len(ranked))}
	for i, c := range ranked {
		response.Comparisons[i] = ComparisonDTO{
			Rank:   i + 1,
			Name:   c.Name,
			Recipe: types.ToRecipeDTO(c.Recipe),
		}
	}
	return response, nil
}
