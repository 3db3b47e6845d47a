package mixing

import (
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
)

// MaxEffects is the most effects a single product can carry
const MaxEffects = 8

// EffectResolver turns a product and an ordered mixer list into the resulting effects
type EffectResolver interface {
	ResolveEffects(product string, mixers []string) []string
}

// Resolver applies the catalog's replacement rules in mixer order.
//
// For every known mixer the working list is scanned in order and the first effect
// with a (effect, mixer) replacement rule is swapped in place; at most one
// replacement happens per mixer. When nothing is replaced the mixer's own effect is
// appended, provided it is absent and the list holds fewer than MaxEffects entries.
// A replacement whose result is already present drops the replaced effect instead.
// Unknown mixers are skipped, and an unknown product simply starts from no effects.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a resolver over the given catalog
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// ResolveEffects returns the effects in order of first appearance, never more than MaxEffects
func (r *Resolver) ResolveEffects(product string, mixers []string) []string {
	effects := seedEffects(r.catalog, product)

	for _, name := range mixers {
		mixer, ok := r.catalog.Mixer(name)
		if !ok {
			continue
		}

		replaced := false
		for i, existing := range effects {
			if result, ok := r.catalog.Replacement(existing, name); ok {
				effects = replaceAt(effects, i, result)
				replaced = true
				break
			}
		}

		if !replaced {
			effects = appendEffect(effects, mixer.Effect)
		}
	}

	if len(effects) > MaxEffects {
		effects = effects[:MaxEffects]
	}
	return effects
}

func seedEffects(c *catalog.Catalog, product string) []string {
	effects := make([]string, 0, MaxEffects)
	if strain, ok := c.Strain(product); ok && strain.Effect != "" {
		effects = append(effects, strain.Effect)
	}
	return effects
}

func appendEffect(effects []string, effect string) []string {
	if len(effects) >= MaxEffects || contains(effects, effect) {
		return effects
	}
	return append(effects, effect)
}

// replaceAt swaps effects[i] for result, or removes effects[i] when result is
// already elsewhere in the list
func replaceAt(effects []string, i int, result string) []string {
	for j, e := range effects {
		if j != i && e == result {
			return append(effects[:i:i], effects[i+1:]...)
		}
	}
	effects[i] = result
	return effects
}

func contains(effects []string, effect string) bool {
	for _, e := range effects {
		if e == effect {
			return true
		}
	}
	return false
}
