package mixing

import (
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
)

// InteractionResolver resolves effects with the catalog's interaction rule table
// instead of the plain replacement map.
//
// For each known mixer the working list is scanned in order; the first effect with a
// rule for that mixer wins. If no present effect matches, the first unconditional
// rule (empty Existing) for the mixer applies. A rule with Remove swaps the removed
// effect for the result in place; a rule without Remove adds the result. With no rule
// at all the mixer's own effect is added. Duplicates and the MaxEffects cap are
// enforced the same way as Resolver.
type InteractionResolver struct {
	catalog *catalog.Catalog
	byMixer map[string][]catalog.InteractionRule
}

// NewInteractionResolver indexes the interaction rules by mixer
func NewInteractionResolver(c *catalog.Catalog) *InteractionResolver {
	byMixer := make(map[string][]catalog.InteractionRule)
	for _, rule := range c.InteractionRules() {
		byMixer[rule.Mixer] = append(byMixer[rule.Mixer], rule)
	}
	return &InteractionResolver{catalog: c, byMixer: byMixer}
}

// ResolveEffects returns the effects in order of first appearance, never more than MaxEffects
func (r *InteractionResolver) ResolveEffects(product string, mixers []string) []string {
	effects := seedEffects(r.catalog, product)

	for _, name := range mixers {
		mixer, ok := r.catalog.Mixer(name)
		if !ok {
			continue
		}

		rule, ok := r.match(effects, name)
		if !ok {
			effects = appendEffect(effects, mixer.Effect)
			continue
		}
		effects = apply(effects, rule)
	}

	if len(effects) > MaxEffects {
		effects = effects[:MaxEffects]
	}
	return effects
}

func (r *InteractionResolver) match(effects []string, mixer string) (catalog.InteractionRule, bool) {
	rules := r.byMixer[mixer]
	for _, existing := range effects {
		for _, rule := range rules {
			if rule.Existing == existing {
				return rule, true
			}
		}
	}
	for _, rule := range rules {
		if rule.Existing == "" {
			return rule, true
		}
	}
	return catalog.InteractionRule{}, false
}

func apply(effects []string, rule catalog.InteractionRule) []string {
	if rule.Remove == "" {
		return appendEffect(effects, rule.Result)
	}

	for i, e := range effects {
		if e != rule.Remove {
			continue
		}
		return replaceAt(effects, i, rule.Result)
	}
	return appendEffect(effects, rule.Result)
}

// NewEffectResolver picks a resolver by name: "interactions" selects
// InteractionResolver, anything else the replacement-table Resolver.
func NewEffectResolver(kind string, c *catalog.Catalog) EffectResolver {
	if kind == ResolverInteractions {
		return NewInteractionResolver(c)
	}
	return NewResolver(c)
}

// Resolver kinds accepted by NewEffectResolver
const (
	ResolverReplacements = "replacements"
	ResolverInteractions = "interactions"
)
