package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// SuggestProducts returns catalog product names close to name, best match first
func (c *Catalog) SuggestProducts(name string) []string {
	return suggest(name, c.Products())
}

// SuggestMixers returns catalog mixer names close to name, best match first
func (c *Catalog) SuggestMixers(name string) []string {
	return suggest(name, c.mixerOrder)
}

// UnknownMixers returns the names in mixers that the catalog does not carry, in order
func (c *Catalog) UnknownMixers(mixers []string) []string {
	var unknown []string
	for _, m := range mixers {
		if _, ok := c.mixers[m]; !ok {
			unknown = append(unknown, m)
		}
	}
	return unknown
}

type candidate struct {
	name     string
	distance int
	index    int
}

func suggest(name string, names []string) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	limit := distanceLimit(len(needle))
	var matches []candidate
	for i, n := range names {
		lower := strings.ToLower(n)
		if lower == needle {
			return []string{n}
		}
		d := levenshtein.ComputeDistance(needle, lower)
		if d <= limit || strings.HasPrefix(lower, needle) {
			matches = append(matches, candidate{name: n, distance: d, index: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].index < matches[j].index
	})

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.name)
	}
	return out
}

// distanceLimit scales the accepted edit distance with the input length
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
