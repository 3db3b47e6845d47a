package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
	"github.com/kibahcorps/schedule1-go/internal/domain/valuation"
)

// ResolveEffectsQuery asks which effects a mixer sequence leaves on a product
type ResolveEffectsQuery struct {
	Product string
	Mixers  []string
}

// ResolveEffectsResponse lists the resolved effects in order
type ResolveEffectsResponse struct {
	Product       string
	Effects       []string
	KnownProduct  bool
	IgnoredMixers []types.IgnoredMixerDTO
}

// ResolveEffectsHandler handles effect resolution queries
type ResolveEffectsHandler struct {
	engine *valuation.Engine
}

// NewResolveEffectsHandler creates a new handler
func NewResolveEffectsHandler(engine *valuation.Engine) *ResolveEffectsHandler {
	return &ResolveEffectsHandler{engine: engine}
}

// Handle executes the query. Unknown products resolve to no effects rather than failing.
func (h *ResolveEffectsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ResolveEffectsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	c := h.engine.Catalog()
	return &ResolveEffectsResponse{
		Product:       query.Product,
		Effects:       h.engine.ResolveEffects(query.Product, query.Mixers),
		KnownProduct:  c.HasProduct(query.Product),
		IgnoredMixers: types.ToIgnoredMixerDTOs(c, query.Mixers),
	}, nil
}
