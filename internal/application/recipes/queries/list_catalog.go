package queries

import (
	"context"
	"fmt"

	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
)

// Product kinds reported by ListProductsQuery
const (
	ProductKindFlat   = "flat"
	ProductKindStrain = "strain"
)

// ProductDTO describes a base product
type ProductDTO struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	BaseValue  float64 `json:"base_value"`
	Effect     string  `json:"effect,omitempty"`
	SeedCost   float64 `json:"seed_cost,omitempty"`
	YieldRange [2]int  `json:"yield_range,omitempty"`
}

// MixerDTO describes a mixer
type MixerDTO struct {
	Name   string `json:"name"`
	Effect string `json:"effect"`
	Cost   int    `json:"cost"`
	Unlock string `json:"unlock,omitempty"`
}

// EffectDTO describes an effect
type EffectDTO struct {
	Name          string  `json:"name"`
	Multiplier    float64 `json:"multiplier"`
	Addictiveness float64 `json:"addictiveness"`
	Tier          int     `json:"tier"`
}

// ListProductsQuery lists flat products then strains
type ListProductsQuery struct{}

// ListProductsResponse contains the catalog products
type ListProductsResponse struct {
	Products []ProductDTO
}

// ListMixersQuery lists mixers in catalog order
type ListMixersQuery struct{}

// ListMixersResponse contains the catalog mixers
type ListMixersResponse struct {
	Mixers []MixerDTO
}

// ListEffectsQuery lists effects in catalog order
type ListEffectsQuery struct{}

// ListEffectsResponse contains the catalog effects
type ListEffectsResponse struct {
	Effects []EffectDTO
}

// ListCatalogHandler answers all three catalog listing queries
type ListCatalogHandler struct {
	catalog *catalog.Catalog
}

// NewListCatalogHandler creates a new handler
func NewListCatalogHandler(c *catalog.Catalog) *ListCatalogHandler {
	return &ListCatalogHandler{catalog: c}
}

// Handle executes the query
func (h *ListCatalogHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch request.(type) {
	case *ListProductsQuery:
		return &ListProductsResponse{Products: h.products()}, nil
	case *ListMixersQuery:
		mixers := h.catalog.Mixers()
		out := make([]MixerDTO, len(mixers))
		for i, m := range mixers {
			out[i] = MixerDTO{Name: m.Name, Effect: m.Effect, Cost: m.Cost, Unlock: m.Unlock}
		}
		return &ListMixersResponse{Mixers: out}, nil
	case *ListEffectsQuery:
		effects := h.catalog.Effects()
		out := make([]EffectDTO, len(effects))
		for i, e := range effects {
			out[i] = EffectDTO{Name: e.Name, Multiplier: e.Multiplier, Addictiveness: e.Addictiveness, Tier: e.Tier}
		}
		return &ListEffectsResponse{Effects: out}, nil
	default:
		return nil, fmt.Errorf("invalid request type")
	}
}

func (h *ListCatalogHandler) products() []ProductDTO {
	var out []ProductDTO
	for _, p := range h.catalog.FlatProducts() {
		out = append(out, ProductDTO{Name: p.Name, Kind: ProductKindFlat, BaseValue: p.BaseValue})
	}
	for _, s := range h.catalog.Strains() {
		out = append(out, ProductDTO{
			Name:       s.Name,
			Kind:       ProductKindStrain,
			BaseValue:  s.BudValue,
			Effect:     s.Effect,
			SeedCost:   s.SeedCost,
			YieldRange: [2]int{s.YieldMin, s.YieldMax},
		})
	}
	return out
}
