package catalog

import (
	"fmt"
	"math"
	"strings"
)

// FlatProduct is a generic drug type with a flat base market value
type FlatProduct struct {
	Name      string
	BaseValue float64
}

// Strain is a grown product with an inherent effect and a seed economy
type Strain struct {
	Name     string
	Effect   string
	SeedCost float64
	BudValue float64
	YieldMin int
	YieldMax int
}

// AverageYield returns the midpoint of the strain's yield range
func (s Strain) AverageYield() float64 {
	return float64(s.YieldMin+s.YieldMax) / 2
}

// Mixer is an ingredient that contributes or replaces an effect
type Mixer struct {
	Name   string
	Effect string
	Cost   int
	Unlock string
}

// Effect is a named trait carried by a product
type Effect struct {
	Name          string
	Multiplier    float64
	Addictiveness float64
	Tier          int
}

// ReplacementRule maps (existing effect, mixer) to the effect that replaces it
type ReplacementRule struct {
	Existing string
	Mixer    string
	Result   string
}

// InteractionRule is the richer rule form: Existing may be empty (unconditional)
// and Remove names the effect dropped when the rule fires.
type InteractionRule struct {
	Existing string
	Mixer    string
	Result   string
	Remove   string
}

// ProductionInfo describes batch production for non-strain products
type ProductionInfo struct {
	IngredientsCost float64
	Yield           int
	UnitValue       float64
}

// PredefinedRecipe is a named, known-good mixer sequence for one or more base products
type PredefinedRecipe struct {
	Name            string
	Products        []string
	Mixers          []string
	Effects         []string
	MultiplierTotal float64
	Profit          float64
}

// Data is the raw table set a Catalog is built from
type Data struct {
	Products      []FlatProduct
	Strains       []Strain
	Mixers        []Mixer
	Effects       []Effect
	Replacements  []ReplacementRule
	Interactions  []InteractionRule
	Addictiveness map[string]float64
	Production    map[string]ProductionInfo
	Recipes       []PredefinedRecipe
}

type ruleKey struct {
	existing string
	mixer    string
}

// Catalog is the immutable game data every calculation reads from.
//
// A Catalog is built once with New (or Default) and shared by pointer. No method
// mutates it and every accessor returns copies, so it is safe for concurrent use.
// Iteration order of products and mixers follows the order of the source tables,
// which keeps search results reproducible.
type Catalog struct {
	flat        map[string]FlatProduct
	flatOrder   []string
	strains     map[string]Strain
	strainOrder []string
	mixers      map[string]Mixer
	mixerOrder  []string
	effects     map[string]Effect
	effectOrder []string

	replacements  map[ruleKey]string
	interactions  []InteractionRule
	addictiveness map[string]float64
	production    map[string]ProductionInfo
	recipes       []PredefinedRecipe
}

// New validates the tables and builds a Catalog.
// Replacement and interaction rules are kept verbatim: rules that name a mixer
// missing from the mixer table are legal and simply never fire.
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		flat:          make(map[string]FlatProduct, len(data.Products)),
		strains:       make(map[string]Strain, len(data.Strains)),
		mixers:        make(map[string]Mixer, len(data.Mixers)),
		effects:       make(map[string]Effect, len(data.Effects)),
		replacements:  make(map[ruleKey]string, len(data.Replacements)),
		addictiveness: make(map[string]float64, len(data.Addictiveness)),
		production:    make(map[string]ProductionInfo, len(data.Production)),
	}

	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for _, e := range data.Effects {
		switch {
		case strings.TrimSpace(e.Name) == "":
			fail("effect with empty name")
			continue
		case c.hasEffect(e.Name):
			fail("duplicate effect %q", e.Name)
			continue
		case math.IsNaN(e.Multiplier) || math.IsInf(e.Multiplier, 0):
			fail("effect %q has non-finite multiplier", e.Name)
		case e.Addictiveness < 0 || e.Addictiveness > 1:
			fail("effect %q addictiveness %.2f outside [0,1]", e.Name, e.Addictiveness)
		}
		c.effects[e.Name] = e
		c.effectOrder = append(c.effectOrder, e.Name)
	}

	for _, p := range data.Products {
		if strings.TrimSpace(p.Name) == "" {
			fail("product with empty name")
			continue
		}
		if c.HasProduct(p.Name) {
			fail("duplicate product %q", p.Name)
			continue
		}
		if p.BaseValue < 0 {
			fail("product %q has negative base value", p.Name)
		}
		c.flat[p.Name] = p
		c.flatOrder = append(c.flatOrder, p.Name)
	}

	for _, s := range data.Strains {
		if strings.TrimSpace(s.Name) == "" {
			fail("strain with empty name")
			continue
		}
		if c.HasProduct(s.Name) {
			fail("duplicate product %q", s.Name)
			continue
		}
		if s.YieldMin < 1 || s.YieldMax < s.YieldMin {
			fail("strain %q has invalid yield range [%d,%d]", s.Name, s.YieldMin, s.YieldMax)
		}
		if s.SeedCost < 0 || s.BudValue < 0 {
			fail("strain %q has negative seed cost or bud value", s.Name)
		}
		c.strains[s.Name] = s
		c.strainOrder = append(c.strainOrder, s.Name)
	}

	for _, m := range data.Mixers {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Effect) == "" {
			fail("mixer %q missing name or effect", m.Name)
			continue
		}
		if _, dup := c.mixers[m.Name]; dup {
			fail("duplicate mixer %q", m.Name)
			continue
		}
		if m.Cost < 0 {
			fail("mixer %q has negative cost", m.Name)
		}
		c.mixers[m.Name] = m
		c.mixerOrder = append(c.mixerOrder, m.Name)
	}

	for _, r := range data.Replacements {
		if r.Existing == "" || r.Mixer == "" || r.Result == "" {
			fail("replacement rule %+v has empty field", r)
			continue
		}
		key := ruleKey{existing: r.Existing, mixer: r.Mixer}
		if _, dup := c.replacements[key]; dup {
			fail("duplicate replacement rule (%s, %s)", r.Existing, r.Mixer)
			continue
		}
		c.replacements[key] = r.Result
	}

	for _, r := range data.Interactions {
		if r.Mixer == "" || r.Result == "" {
			fail("interaction rule %+v missing mixer or result", r)
			continue
		}
		c.interactions = append(c.interactions, r)
	}

	for name, v := range data.Addictiveness {
		if v < 0 || v > 1 {
			fail("base addictiveness of %q %.2f outside [0,1]", name, v)
		}
		c.addictiveness[name] = v
	}

	for name, info := range data.Production {
		if info.Yield < 1 {
			fail("production info for %q has yield %d", name, info.Yield)
			continue
		}
		c.production[name] = info
	}

	for _, r := range data.Recipes {
		c.recipes = append(c.recipes, PredefinedRecipe{
			Name:            r.Name,
			Products:        append([]string(nil), r.Products...),
			Mixers:          append([]string(nil), r.Mixers...),
			Effects:         append([]string(nil), r.Effects...),
			MultiplierTotal: r.MultiplierTotal,
			Profit:          r.Profit,
		})
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w:\n  %s", ErrInvalidCatalog, strings.Join(problems, "\n  "))
	}
	return c, nil
}

// MustNew is New for tables known to be valid at compile time
func MustNew(data Data) *Catalog {
	c, err := New(data)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) hasEffect(name string) bool {
	_, ok := c.effects[name]
	return ok
}

// HasProduct reports whether name is a flat product or a strain
func (c *Catalog) HasProduct(name string) bool {
	if _, ok := c.flat[name]; ok {
		return true
	}
	_, ok := c.strains[name]
	return ok
}

// FlatProduct looks up a flat product by name
func (c *Catalog) FlatProduct(name string) (FlatProduct, bool) {
	p, ok := c.flat[name]
	return p, ok
}

// Strain looks up a strain by name
func (c *Catalog) Strain(name string) (Strain, bool) {
	s, ok := c.strains[name]
	return s, ok
}

// Mixer looks up a mixer by name
func (c *Catalog) Mixer(name string) (Mixer, bool) {
	m, ok := c.mixers[name]
	return m, ok
}

// Effect looks up an effect by name
func (c *Catalog) Effect(name string) (Effect, bool) {
	e, ok := c.effects[name]
	return e, ok
}

// Replacement returns the effect that replaces existing when mixer is applied
func (c *Catalog) Replacement(existing, mixer string) (string, bool) {
	r, ok := c.replacements[ruleKey{existing: existing, mixer: mixer}]
	return r, ok
}

// BaseAddictiveness returns the inherent addictiveness of a product (0 if unlisted)
func (c *Catalog) BaseAddictiveness(product string) float64 {
	return c.addictiveness[product]
}

// Production returns batch production info for a product
func (c *Catalog) Production(product string) (ProductionInfo, bool) {
	p, ok := c.production[product]
	return p, ok
}

// Products returns every product name: flat products first, then strains
func (c *Catalog) Products() []string {
	names := make([]string, 0, len(c.flatOrder)+len(c.strainOrder))
	names = append(names, c.flatOrder...)
	return append(names, c.strainOrder...)
}

// FlatProducts returns the flat products in table order
func (c *Catalog) FlatProducts() []FlatProduct {
	out := make([]FlatProduct, 0, len(c.flatOrder))
	for _, name := range c.flatOrder {
		out = append(out, c.flat[name])
	}
	return out
}

// Strains returns the strains in table order
func (c *Catalog) Strains() []Strain {
	out := make([]Strain, 0, len(c.strainOrder))
	for _, name := range c.strainOrder {
		out = append(out, c.strains[name])
	}
	return out
}

// Mixers returns the mixers in table order
func (c *Catalog) Mixers() []Mixer {
	out := make([]Mixer, 0, len(c.mixerOrder))
	for _, name := range c.mixerOrder {
		out = append(out, c.mixers[name])
	}
	return out
}

// MixerNames returns mixer names in table order
func (c *Catalog) MixerNames() []string {
	return append([]string(nil), c.mixerOrder...)
}

// Effects returns the effects in table order
func (c *Catalog) Effects() []Effect {
	out := make([]Effect, 0, len(c.effectOrder))
	for _, name := range c.effectOrder {
		out = append(out, c.effects[name])
	}
	return out
}

// InteractionRules returns a copy of the interaction rule table
func (c *Catalog) InteractionRules() []InteractionRule {
	return append([]InteractionRule(nil), c.interactions...)
}

// PredefinedRecipes returns the known named recipes
func (c *Catalog) PredefinedRecipes() []PredefinedRecipe {
	out := make([]PredefinedRecipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r
		out[i].Products = append([]string(nil), r.Products...)
		out[i].Mixers = append([]string(nil), r.Mixers...)
		out[i].Effects = append([]string(nil), r.Effects...)
	}
	return out
}

// WithMixers returns a new Catalog restricted to the named mixers, keeping table order.
// Unknown names are ignored. Used to narrow the search space.
func (c *Catalog) WithMixers(names ...string) *Catalog {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}

	clone := *c
	clone.mixers = make(map[string]Mixer, len(names))
	clone.mixerOrder = nil
	for _, name := range c.mixerOrder {
		if keep[name] {
			clone.mixers[name] = c.mixers[name]
			clone.mixerOrder = append(clone.mixerOrder, name)
		}
	}
	return &clone
}
