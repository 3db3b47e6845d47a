package dealer

import (
	"sort"
	"strings"
)

// DefaultPercentageTaken is the cut assumed for dealers with no recorded percentage
const DefaultPercentageTaken = 20.0

// Dealer is an NPC who sells product on the player's behalf for a cut
type Dealer struct {
	Name                string
	Region              string
	Location            string
	PercentageTaken     float64
	PreferredEffects    []string
	MaxQuantity         int
	InitialBuyIn        float64
	AssignableCustomers int
	Notes               string
}

// ProfitEstimate is what a dealer earns from marking up a quantity of product
type ProfitEstimate struct {
	DealerName       string  `json:"dealer_name"`
	Product          string  `json:"product"`
	Quantity         int     `json:"quantity"`
	BaseValue        float64 `json:"base_value"`
	DealerPrice      float64 `json:"dealer_price"`
	MarkupPercentage float64 `json:"markup_percentage"`
	TotalBaseValue   float64 `json:"total_base_value"`
	TotalDealerValue float64 `json:"total_dealer_value"`
	DealerProfit     float64 `json:"dealer_profit"`
}

// EstimateProfit treats the dealer's percentage taken as a markup over baseValue
func EstimateProfit(d Dealer, product string, quantity int, baseValue float64) ProfitEstimate {
	markup := d.PercentageTaken
	dealerPrice := baseValue * (1 + markup/100)
	totalBase := baseValue * float64(quantity)
	totalDealer := dealerPrice * float64(quantity)

	return ProfitEstimate{
		DealerName:       d.Name,
		Product:          product,
		Quantity:         quantity,
		BaseValue:        baseValue,
		DealerPrice:      dealerPrice,
		MarkupPercentage: markup,
		TotalBaseValue:   totalBase,
		TotalDealerValue: totalDealer,
		DealerProfit:     totalDealer - totalBase,
	}
}

// Match scores how well a dealer suits a product
type Match struct {
	DealerName            string  `json:"dealer_name"`
	Region                string  `json:"region"`
	Location              string  `json:"location"`
	MatchingEffects       int     `json:"matching_effects"`
	EffectMatchPercentage float64 `json:"effect_match_percentage"`
	MarkupPercentage      float64 `json:"markup_percentage"`
	MaxQuantity           int     `json:"max_quantity"`
	Score                 float64 `json:"score"`
}

// Scoring weights for RankDealers
const (
	effectWeight   = 0.6
	markupWeight   = 0.3
	quantityWeight = 10.0
	quantityCap    = 500
)

// RankDealers scores every dealer for a product carrying effects, best first.
//
// score = effect match % * 0.6 + (100 - markup) * 0.3 + min(max quantity, 500)/500 * 10
//
// The match percentage is relative to the dealer's preferred effects, so a dealer
// with no preferences scores 0 on that term. Equal scores keep input order.
func RankDealers(dealers []Dealer, effects []string) []Match {
	matches := make([]Match, 0, len(dealers))
	for _, d := range dealers {
		preferred := make(map[string]bool, len(d.PreferredEffects))
		for _, e := range d.PreferredEffects {
			preferred[e] = true
		}

		matching := 0
		for _, e := range effects {
			if preferred[e] {
				matching++
			}
		}

		matchPct := 0.0
		if len(d.PreferredEffects) > 0 {
			matchPct = float64(matching) / float64(len(d.PreferredEffects)) * 100
		}

		capacity := d.MaxQuantity
		if capacity > quantityCap {
			capacity = quantityCap
		}

		matches = append(matches, Match{
			DealerName:            d.Name,
			Region:                d.Region,
			Location:              d.Location,
			MatchingEffects:       matching,
			EffectMatchPercentage: matchPct,
			MarkupPercentage:      d.PercentageTaken,
			MaxQuantity:           d.MaxQuantity,
			Score: matchPct*effectWeight +
				(100-d.PercentageTaken)*markupWeight +
				float64(capacity)/quantityCap*quantityWeight,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// FindByName looks a dealer up case-insensitively
func FindByName(dealers []Dealer, name string) (Dealer, error) {
	for _, d := range dealers {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Dealer{}, &ErrDealerNotFound{Name: name}
}
