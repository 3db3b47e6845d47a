package valuation

import (
	"math"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/mixing"
)

// MaxAddictiveness caps the addictiveness of any product
const MaxAddictiveness = 1.0

// Engine computes market value, cost, profit and addictiveness of mixes.
//
// The engine is stateless beyond its catalog and resolver and is safe for
// concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	resolver mixing.EffectResolver
}

// NewEngine creates an engine. A nil resolver selects the replacement-table Resolver.
func NewEngine(c *catalog.Catalog, resolver mixing.EffectResolver) *Engine {
	if resolver == nil {
		resolver = mixing.NewResolver(c)
	}
	return &Engine{catalog: c, resolver: resolver}
}

// Catalog returns the catalog the engine reads from
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ResolveEffects delegates to the configured effect resolver
func (e *Engine) ResolveEffects(product string, mixers []string) []string {
	return e.resolver.ResolveEffects(product, mixers)
}

// BaseValue returns the flat base value or the strain's bud value
func (e *Engine) BaseValue(product string) (float64, error) {
	if p, ok := e.catalog.FlatProduct(product); ok {
		return p.BaseValue, nil
	}
	if s, ok := e.catalog.Strain(product); ok {
		return s.BudValue, nil
	}
	return 0, e.catalog.NewUnknownProductError(product)
}

// MultiplierTotal sums the multipliers of the known effects
func (e *Engine) MultiplierTotal(effects []string) float64 {
	total := 0.0
	for _, name := range effects {
		if effect, ok := e.catalog.Effect(name); ok {
			total += effect.Multiplier
		}
	}
	return total
}

// MarketValue computes base value * (1 + sum of multipliers), rounded with the
// exact-half-truncates rule.
func (e *Engine) MarketValue(product string, effects []string) (int, error) {
	base, err := e.BaseValue(product)
	if err != nil {
		return 0, err
	}
	return RoundMarketValue(base * (1 + e.MultiplierTotal(effects))), nil
}

// MixerCost sums the cost of the known mixers
func (e *Engine) MixerCost(mixers []string) int {
	total := 0
	for _, name := range mixers {
		if m, ok := e.catalog.Mixer(name); ok {
			total += m.Cost
		}
	}
	return total
}

// UnitCost returns the unrounded per-unit cost of the base product.
// Strains cost seed/average yield, produced goods ingredients/yield, and anything
// else falls back to its flat base value (0 when unknown).
func (e *Engine) UnitCost(product string) float64 {
	if s, ok := e.catalog.Strain(product); ok {
		return s.SeedCost / s.AverageYield()
	}
	if info, ok := e.catalog.Production(product); ok {
		return info.IngredientsCost / float64(info.Yield)
	}
	if p, ok := e.catalog.FlatProduct(product); ok {
		return p.BaseValue
	}
	return 0
}

// ProductionCost returns base unit cost plus mixer costs, rounded once on the total
func (e *Engine) ProductionCost(product string, mixers []string) int {
	return RoundCost(e.UnitCost(product) + float64(e.MixerCost(mixers)))
}

// Addictiveness returns base addictiveness plus effect addictiveness, clamped to [0, 1]
func (e *Engine) Addictiveness(product string, effects []string) float64 {
	total := e.catalog.BaseAddictiveness(product)
	for _, name := range effects {
		if effect, ok := e.catalog.Effect(name); ok {
			total += effect.Addictiveness
		}
	}
	return math.Max(0, math.Min(total, MaxAddictiveness))
}

// Evaluate resolves the effects of the mix and prices it.
// Returns *catalog.UnknownProductError when the product is not in the catalog.
func (e *Engine) Evaluate(product string, mixers []string) (*Recipe, error) {
	effects := e.resolver.ResolveEffects(product, mixers)

	marketValue, err := e.MarketValue(product, effects)
	if err != nil {
		return nil, err
	}

	totalCost := e.ProductionCost(product, mixers)
	profit := marketValue - totalCost

	return &Recipe{
		product:       product,
		mixers:        append([]string(nil), mixers...),
		effects:       effects,
		marketValue:   marketValue,
		totalCost:     totalCost,
		profit:        profit,
		profitMargin:  Margin(profit, totalCost),
		addictiveness: e.Addictiveness(product, effects),
	}, nil
}

// Extend evaluates the recipe with mixer appended. A mixer already in the sequence
// leaves the recipe unchanged and the receiver is returned.
func (e *Engine) Extend(r *Recipe, mixer string) (*Recipe, error) {
	if r.HasMixer(mixer) {
		return r, nil
	}
	next := make([]string, len(r.mixers), len(r.mixers)+1)
	copy(next, r.mixers)
	return e.Evaluate(r.product, append(next, mixer))
}

// Margin is profit as a percentage of cost; 0 when cost is not positive
func Margin(profit, cost int) float64 {
	if cost <= 0 {
		return 0
	}
	return float64(profit) / float64(cost) * 100
}
