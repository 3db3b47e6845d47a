package valuation

import "math"

// RoundMarketValue rounds to the nearest integer, except that an exact .5 fraction
// truncates instead of rounding up.
func RoundMarketValue(v float64) int {
	if _, frac := math.Modf(v); math.Abs(frac) == 0.5 {
		return int(math.Trunc(v))
	}
	return int(math.Round(v))
}

// RoundCost rounds to the nearest integer with ties going to the even neighbour
func RoundCost(v float64) int {
	return int(math.RoundToEven(v))
}
