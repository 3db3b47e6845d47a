package valuation

import (
	"encoding/json"
	"sort"
	"strings"
)

// Recipe is an evaluated product plus ordered mixer sequence.
// It is never mutated after construction; Engine.Extend returns a new Recipe.
type Recipe struct {
	product       string
	mixers        []string
	effects       []string
	marketValue   int
	totalCost     int
	profit        int
	profitMargin  float64
	addictiveness float64
}

// Record is the plain form of a Recipe handed to presentation and persistence layers
type Record struct {
	Product       string   `json:"product"`
	Mixers        []string `json:"mixers"`
	Effects       []string `json:"effects"`
	MarketValue   int      `json:"market_value"`
	TotalCost     int      `json:"total_cost"`
	Profit        int      `json:"profit"`
	ProfitMargin  float64  `json:"profit_margin"`
	Addictiveness float64  `json:"addictiveness"`
}

func (r *Recipe) Product() string        { return r.product }
func (r *Recipe) Mixers() []string       { return cloneNames(r.mixers) }
func (r *Recipe) Effects() []string      { return cloneNames(r.effects) }
func (r *Recipe) MarketValue() int       { return r.marketValue }
func (r *Recipe) TotalCost() int         { return r.totalCost }
func (r *Recipe) Profit() int            { return r.profit }
func (r *Recipe) ProfitMargin() float64  { return r.profitMargin }
func (r *Recipe) Addictiveness() float64 { return r.addictiveness }
func (r *Recipe) MixerCount() int        { return len(r.mixers) }

// HasMixer reports whether the sequence already contains mixer
func (r *Recipe) HasMixer(mixer string) bool {
	for _, m := range r.mixers {
		if m == mixer {
			return true
		}
	}
	return false
}

// Signature identifies the recipe's effect combination regardless of effect order
func (r *Recipe) Signature() string {
	return EffectSignature(r.effects)
}

// SameSequence reports whether both recipes use the same product and mixer order
func (r *Recipe) SameSequence(other *Recipe) bool {
	if r.product != other.product || len(r.mixers) != len(other.mixers) {
		return false
	}
	for i := range r.mixers {
		if r.mixers[i] != other.mixers[i] {
			return false
		}
	}
	return true
}

// Record converts the recipe into its plain form
func (r *Recipe) Record() Record {
	return Record{
		Product:       r.product,
		Mixers:        r.Mixers(),
		Effects:       r.Effects(),
		MarketValue:   r.marketValue,
		TotalCost:     r.totalCost,
		Profit:        r.profit,
		ProfitMargin:  r.profitMargin,
		Addictiveness: r.addictiveness,
	}
}

// MarshalJSON encodes the recipe as its Record
func (r *Recipe) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Record())
}

// EffectSignature joins the sorted effect names; the unit separator cannot appear in names
func EffectSignature(effects []string) string {
	sorted := append([]string(nil), effects...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x1f")
}

// cloneNames copies names, never returning nil so JSON encodes [] rather than null
func cloneNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
